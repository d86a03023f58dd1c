// Code generated by ent, DO NOT EDIT.

package viewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the viewevent type in the database.
	Label = "view_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldTermID holds the string denoting the term_id field in the database.
	FieldTermID = "term_id"
	// FieldTermName holds the string denoting the term_name field in the database.
	FieldTermName = "term_name"
	// Table holds the table name of the viewevent in the database.
	Table = "view_events"
)

// Columns holds all SQL columns for viewevent fields.
var Columns = []string{
	FieldID,
	FieldTimestamp,
	FieldProfileID,
	FieldTermID,
	FieldTermName,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultProfileID holds the default value on creation for the "profile_id" field.
	DefaultProfileID int
	// TermIDValidator is a validator for the "term_id" field. It is called by the builders before save.
	TermIDValidator func(string) error
)

// OrderOption defines the ordering options for the ViewEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByTermID orders the results by the term_id field.
func ByTermID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTermID, opts...).ToFunc()
}

// ByTermName orders the results by the term_name field.
func ByTermName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTermName, opts...).ToFunc()
}
