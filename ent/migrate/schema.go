// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FavoritesColumns holds the columns for the "favorites" table.
	FavoritesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "profile_id", Type: field.TypeInt},
		{Name: "term_id", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FavoritesTable holds the schema information for the "favorites" table.
	FavoritesTable = &schema.Table{
		Name:       "favorites",
		Columns:    FavoritesColumns,
		PrimaryKey: []*schema.Column{FavoritesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "favorite_profile_id_term_id",
				Unique:  true,
				Columns: []*schema.Column{FavoritesColumns[1], FavoritesColumns[2]},
			},
			{
				Name:    "favorite_profile_id",
				Unique:  false,
				Columns: []*schema.Column{FavoritesColumns[1]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "uid", Type: field.TypeUUID, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// ViewEventsColumns holds the columns for the "view_events" table.
	ViewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeInt, Default: 0},
		{Name: "term_id", Type: field.TypeString},
		{Name: "term_name", Type: field.TypeString},
	}
	// ViewEventsTable holds the schema information for the "view_events" table.
	ViewEventsTable = &schema.Table{
		Name:       "view_events",
		Columns:    ViewEventsColumns,
		PrimaryKey: []*schema.Column{ViewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "viewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ViewEventsColumns[1]},
			},
			{
				Name:    "viewevent_profile_id",
				Unique:  false,
				Columns: []*schema.Column{ViewEventsColumns[2]},
			},
			{
				Name:    "viewevent_term_id",
				Unique:  false,
				Columns: []*schema.Column{ViewEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FavoritesTable,
		ProfilesTable,
		ViewEventsTable,
	}
)

func init() {
}
