// Code generated by ent, DO NOT EDIT.

package favorite

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ayumu/zukan/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Favorite {
	return predicate.Favorite(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Favorite {
	return predicate.Favorite(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Favorite {
	return predicate.Favorite(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Favorite {
	return predicate.Favorite(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Favorite {
	return predicate.Favorite(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Favorite {
	return predicate.Favorite(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Favorite {
	return predicate.Favorite(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Favorite {
	return predicate.Favorite(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Favorite {
	return predicate.Favorite(sql.FieldLTE(FieldID, id))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v int) predicate.Favorite {
	return predicate.Favorite(sql.FieldEQ(FieldProfileID, v))
}

// TermID applies equality check predicate on the "term_id" field. It's identical to TermIDEQ.
func TermID(v string) predicate.Favorite {
	return predicate.Favorite(sql.FieldEQ(FieldTermID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Favorite {
	return predicate.Favorite(sql.FieldEQ(FieldCreatedAt, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v int) predicate.Favorite {
	return predicate.Favorite(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v int) predicate.Favorite {
	return predicate.Favorite(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...int) predicate.Favorite {
	return predicate.Favorite(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...int) predicate.Favorite {
	return predicate.Favorite(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v int) predicate.Favorite {
	return predicate.Favorite(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v int) predicate.Favorite {
	return predicate.Favorite(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v int) predicate.Favorite {
	return predicate.Favorite(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v int) predicate.Favorite {
	return predicate.Favorite(sql.FieldLTE(FieldProfileID, v))
}

// TermIDEQ applies the EQ predicate on the "term_id" field.
func TermIDEQ(v string) predicate.Favorite {
	return predicate.Favorite(sql.FieldEQ(FieldTermID, v))
}

// TermIDNEQ applies the NEQ predicate on the "term_id" field.
func TermIDNEQ(v string) predicate.Favorite {
	return predicate.Favorite(sql.FieldNEQ(FieldTermID, v))
}

// TermIDIn applies the In predicate on the "term_id" field.
func TermIDIn(vs ...string) predicate.Favorite {
	return predicate.Favorite(sql.FieldIn(FieldTermID, vs...))
}

// TermIDNotIn applies the NotIn predicate on the "term_id" field.
func TermIDNotIn(vs ...string) predicate.Favorite {
	return predicate.Favorite(sql.FieldNotIn(FieldTermID, vs...))
}

// TermIDGT applies the GT predicate on the "term_id" field.
func TermIDGT(v string) predicate.Favorite {
	return predicate.Favorite(sql.FieldGT(FieldTermID, v))
}

// TermIDGTE applies the GTE predicate on the "term_id" field.
func TermIDGTE(v string) predicate.Favorite {
	return predicate.Favorite(sql.FieldGTE(FieldTermID, v))
}

// TermIDLT applies the LT predicate on the "term_id" field.
func TermIDLT(v string) predicate.Favorite {
	return predicate.Favorite(sql.FieldLT(FieldTermID, v))
}

// TermIDLTE applies the LTE predicate on the "term_id" field.
func TermIDLTE(v string) predicate.Favorite {
	return predicate.Favorite(sql.FieldLTE(FieldTermID, v))
}

// TermIDContains applies the Contains predicate on the "term_id" field.
func TermIDContains(v string) predicate.Favorite {
	return predicate.Favorite(sql.FieldContains(FieldTermID, v))
}

// TermIDHasPrefix applies the HasPrefix predicate on the "term_id" field.
func TermIDHasPrefix(v string) predicate.Favorite {
	return predicate.Favorite(sql.FieldHasPrefix(FieldTermID, v))
}

// TermIDHasSuffix applies the HasSuffix predicate on the "term_id" field.
func TermIDHasSuffix(v string) predicate.Favorite {
	return predicate.Favorite(sql.FieldHasSuffix(FieldTermID, v))
}

// TermIDEqualFold applies the EqualFold predicate on the "term_id" field.
func TermIDEqualFold(v string) predicate.Favorite {
	return predicate.Favorite(sql.FieldEqualFold(FieldTermID, v))
}

// TermIDContainsFold applies the ContainsFold predicate on the "term_id" field.
func TermIDContainsFold(v string) predicate.Favorite {
	return predicate.Favorite(sql.FieldContainsFold(FieldTermID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Favorite {
	return predicate.Favorite(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Favorite {
	return predicate.Favorite(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Favorite {
	return predicate.Favorite(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Favorite {
	return predicate.Favorite(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Favorite {
	return predicate.Favorite(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Favorite {
	return predicate.Favorite(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Favorite {
	return predicate.Favorite(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Favorite {
	return predicate.Favorite(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Favorite) predicate.Favorite {
	return predicate.Favorite(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Favorite) predicate.Favorite {
	return predicate.Favorite(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Favorite) predicate.Favorite {
	return predicate.Favorite(sql.NotPredicates(p))
}
