// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ayumu/zukan/ent/viewevent"
)

// ViewEvent is the model entity for the ViewEvent schema.
type ViewEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Owning profile; 0 when browsing anonymously
	ProfileID int `json:"profile_id,omitempty"`
	// TermID holds the value of the "term_id" field.
	TermID string `json:"term_id,omitempty"`
	// Denormalized for display after catalog changes
	TermName     string `json:"term_name,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ViewEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case viewevent.FieldID, viewevent.FieldProfileID:
			values[i] = new(sql.NullInt64)
		case viewevent.FieldTermID, viewevent.FieldTermName:
			values[i] = new(sql.NullString)
		case viewevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ViewEvent fields.
func (_m *ViewEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case viewevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case viewevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case viewevent.FieldProfileID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				_m.ProfileID = int(value.Int64)
			}
		case viewevent.FieldTermID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field term_id", values[i])
			} else if value.Valid {
				_m.TermID = value.String
			}
		case viewevent.FieldTermName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field term_name", values[i])
			} else if value.Valid {
				_m.TermName = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ViewEvent.
// This includes values selected through modifiers, order, etc.
func (_m *ViewEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ViewEvent.
// Note that you need to call ViewEvent.Unwrap() before calling this method if this ViewEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ViewEvent) Update() *ViewEventUpdateOne {
	return NewViewEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ViewEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ViewEvent) Unwrap() *ViewEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ViewEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ViewEvent) String() string {
	var builder strings.Builder
	builder.WriteString("ViewEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("profile_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProfileID))
	builder.WriteString(", ")
	builder.WriteString("term_id=")
	builder.WriteString(_m.TermID)
	builder.WriteString(", ")
	builder.WriteString("term_name=")
	builder.WriteString(_m.TermName)
	builder.WriteByte(')')
	return builder.String()
}

// ViewEvents is a parsable slice of ViewEvent.
type ViewEvents []*ViewEvent
