// Code generated by ent, DO NOT EDIT.

package viewevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ayumu/zukan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLTE(FieldID, id))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldProfileID, v))
}

// TermID applies equality check predicate on the "term_id" field. It's identical to TermIDEQ.
func TermID(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldTermID, v))
}

// TermName applies equality check predicate on the "term_name" field. It's identical to TermNameEQ.
func TermName(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldTermName, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v int) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLTE(FieldProfileID, v))
}

// TermIDEQ applies the EQ predicate on the "term_id" field.
func TermIDEQ(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldTermID, v))
}

// TermIDNEQ applies the NEQ predicate on the "term_id" field.
func TermIDNEQ(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNEQ(FieldTermID, v))
}

// TermIDIn applies the In predicate on the "term_id" field.
func TermIDIn(vs ...string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldIn(FieldTermID, vs...))
}

// TermIDNotIn applies the NotIn predicate on the "term_id" field.
func TermIDNotIn(vs ...string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNotIn(FieldTermID, vs...))
}

// TermIDGT applies the GT predicate on the "term_id" field.
func TermIDGT(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGT(FieldTermID, v))
}

// TermIDGTE applies the GTE predicate on the "term_id" field.
func TermIDGTE(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGTE(FieldTermID, v))
}

// TermIDLT applies the LT predicate on the "term_id" field.
func TermIDLT(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLT(FieldTermID, v))
}

// TermIDLTE applies the LTE predicate on the "term_id" field.
func TermIDLTE(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLTE(FieldTermID, v))
}

// TermIDContains applies the Contains predicate on the "term_id" field.
func TermIDContains(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldContains(FieldTermID, v))
}

// TermIDHasPrefix applies the HasPrefix predicate on the "term_id" field.
func TermIDHasPrefix(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldHasPrefix(FieldTermID, v))
}

// TermIDHasSuffix applies the HasSuffix predicate on the "term_id" field.
func TermIDHasSuffix(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldHasSuffix(FieldTermID, v))
}

// TermIDEqualFold applies the EqualFold predicate on the "term_id" field.
func TermIDEqualFold(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEqualFold(FieldTermID, v))
}

// TermIDContainsFold applies the ContainsFold predicate on the "term_id" field.
func TermIDContainsFold(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldContainsFold(FieldTermID, v))
}

// TermNameEQ applies the EQ predicate on the "term_name" field.
func TermNameEQ(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEQ(FieldTermName, v))
}

// TermNameNEQ applies the NEQ predicate on the "term_name" field.
func TermNameNEQ(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNEQ(FieldTermName, v))
}

// TermNameIn applies the In predicate on the "term_name" field.
func TermNameIn(vs ...string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldIn(FieldTermName, vs...))
}

// TermNameNotIn applies the NotIn predicate on the "term_name" field.
func TermNameNotIn(vs ...string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldNotIn(FieldTermName, vs...))
}

// TermNameGT applies the GT predicate on the "term_name" field.
func TermNameGT(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGT(FieldTermName, v))
}

// TermNameGTE applies the GTE predicate on the "term_name" field.
func TermNameGTE(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldGTE(FieldTermName, v))
}

// TermNameLT applies the LT predicate on the "term_name" field.
func TermNameLT(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLT(FieldTermName, v))
}

// TermNameLTE applies the LTE predicate on the "term_name" field.
func TermNameLTE(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldLTE(FieldTermName, v))
}

// TermNameContains applies the Contains predicate on the "term_name" field.
func TermNameContains(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldContains(FieldTermName, v))
}

// TermNameHasPrefix applies the HasPrefix predicate on the "term_name" field.
func TermNameHasPrefix(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldHasPrefix(FieldTermName, v))
}

// TermNameHasSuffix applies the HasSuffix predicate on the "term_name" field.
func TermNameHasSuffix(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldHasSuffix(FieldTermName, v))
}

// TermNameEqualFold applies the EqualFold predicate on the "term_name" field.
func TermNameEqualFold(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldEqualFold(FieldTermName, v))
}

// TermNameContainsFold applies the ContainsFold predicate on the "term_name" field.
func TermNameContainsFold(v string) predicate.ViewEvent {
	return predicate.ViewEvent(sql.FieldContainsFold(FieldTermName, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ViewEvent) predicate.ViewEvent {
	return predicate.ViewEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ViewEvent) predicate.ViewEvent {
	return predicate.ViewEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ViewEvent) predicate.ViewEvent {
	return predicate.ViewEvent(sql.NotPredicates(p))
}
