package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrForbidden            = errors.New("forbidden")
	ErrUnauthenticated      = errors.New("authentication required")
	ErrGuestProfileRequired = errors.New("guest profile required")
	ErrNotFound             = errors.New("not found")
	ErrInvalidCredentials   = errors.New("invalid username or password")
)

// NonFieldErrors is the key used for errors that do not belong to one input field.
const NonFieldErrors = "non_field_errors"

// ValidationError carries per-field messages back to the caller. Conflict
// marks errors caused by existing rows (unique constraints) rather than by
// the shape of the input.
type ValidationError struct {
	Fields   map[string][]string
	Conflict bool
}

func NewFieldError(field, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

func newConflictError(field, message string) *ValidationError {
	v := NewFieldError(field, message)
	v.Conflict = true
	return v
}

func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], message)
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// Err returns nil when nothing was recorded, so callers can write `return verr.Err()`.
func (e *ValidationError) Err() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ----------------------------------------------------
// Storage constraint helpers
// ----------------------------------------------------

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

func isForeignKeyError(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1452 {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// uniqueField pairs a column name, as it shows up in driver messages, with
// the input field and message reported back to the client.
type uniqueField struct {
	column  string
	field   string
	message string
}

// translateConstraint turns a unique violation into a ValidationError naming
// the offending field. Other errors are wrapped and returned as-is.
func translateConstraint(err error, op string, fields []uniqueField) error {
	if err == nil {
		return nil
	}
	if !isDuplicateKey(err) {
		return fmt.Errorf("%s: %w", op, err)
	}

	// MySQL puts the offending value before "for key"; only the key part names the column.
	msg := strings.ToLower(err.Error())
	if i := strings.LastIndex(msg, "for key"); i >= 0 {
		msg = msg[i:]
	}
	for _, f := range fields {
		if strings.Contains(msg, f.column) {
			return newConflictError(f.field, f.message)
		}
	}
	return newConflictError(NonFieldErrors, "A record with these values already exists.")
}
