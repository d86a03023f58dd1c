// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ayumu/zukan/ent/favorite"
	"github.com/ayumu/zukan/ent/profile"
	"github.com/ayumu/zukan/ent/schema"
	"github.com/ayumu/zukan/ent/viewevent"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	favoriteFields := schema.Favorite{}.Fields()
	_ = favoriteFields
	// favoriteDescTermID is the schema descriptor for term_id field.
	favoriteDescTermID := favoriteFields[1].Descriptor()
	// favorite.TermIDValidator is a validator for the "term_id" field. It is called by the builders before save.
	favorite.TermIDValidator = favoriteDescTermID.Validators[0].(func(string) error)
	// favoriteDescCreatedAt is the schema descriptor for created_at field.
	favoriteDescCreatedAt := favoriteFields[2].Descriptor()
	// favorite.DefaultCreatedAt holds the default value on creation for the created_at field.
	favorite.DefaultCreatedAt = favoriteDescCreatedAt.Default.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescUID is the schema descriptor for uid field.
	profileDescUID := profileFields[0].Descriptor()
	// profile.DefaultUID holds the default value on creation for the uid field.
	profile.DefaultUID = profileDescUID.Default.(func() uuid.UUID)
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[1].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[2].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	vieweventMixin := schema.ViewEvent{}.Mixin()
	vieweventMixinFields0 := vieweventMixin[0].Fields()
	_ = vieweventMixinFields0
	vieweventFields := schema.ViewEvent{}.Fields()
	_ = vieweventFields
	// vieweventDescTimestamp is the schema descriptor for timestamp field.
	vieweventDescTimestamp := vieweventMixinFields0[0].Descriptor()
	// viewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	viewevent.DefaultTimestamp = vieweventDescTimestamp.Default.(func() time.Time)
	// vieweventDescProfileID is the schema descriptor for profile_id field.
	vieweventDescProfileID := vieweventFields[0].Descriptor()
	// viewevent.DefaultProfileID holds the default value on creation for the profile_id field.
	viewevent.DefaultProfileID = vieweventDescProfileID.Default.(int)
	// vieweventDescTermID is the schema descriptor for term_id field.
	vieweventDescTermID := vieweventFields[1].Descriptor()
	// viewevent.TermIDValidator is a validator for the "term_id" field. It is called by the builders before save.
	viewevent.TermIDValidator = vieweventDescTermID.Validators[0].(func(string) error)
}
