// Package validation implements a small declarative field validator. A
// schema lists typed rules per field; evaluation walks every field and
// collects every failure before returning, so callers can surface the full
// message set in one response. Uniqueness rules consult persisted state
// through the UniquenessChecker interface.
package validation

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Kind identifies a validation rule.
type Kind string

const (
	KindRequired Kind = "required"
	KindMin      Kind = "min"
	KindMax      Kind = "max"
	KindEmail    Kind = "email"
	KindIn       Kind = "in"
	KindUnique   Kind = "unique"
)

// Rule is one typed rule descriptor. Length is used by min/max, Tokens by
// in, Store and Column by unique.
type Rule struct {
	Kind   Kind
	Length int
	Tokens []string
	Store  string
	Column string
}

func Required() Rule          { return Rule{Kind: KindRequired} }
func Min(n int) Rule          { return Rule{Kind: KindMin, Length: n} }
func Max(n int) Rule          { return Rule{Kind: KindMax, Length: n} }
func Email() Rule             { return Rule{Kind: KindEmail} }
func In(tokens ...string) Rule { return Rule{Kind: KindIn, Tokens: tokens} }

// Unique checks that no persisted record in store has this value in the
// column named after the field.
func Unique(store string) Rule { return Rule{Kind: KindUnique, Store: store} }

// UniqueColumn is Unique with an explicit column name.
func UniqueColumn(store, column string) Rule {
	return Rule{Kind: KindUnique, Store: store, Column: column}
}

// Field pairs a field name with its rules, evaluated left to right.
type Field struct {
	Name  string
	Rules []Rule
}

// Schema is an ordered list of fields to validate.
type Schema []Field

// Messages maps "field.rule" to the human-readable message reported when
// that rule fails.
type Messages map[string]string

// FieldError is one collected failure.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"validation"`
	Message string `json:"message"`
}

// Result holds the collected failures of one validation run.
type Result struct {
	errors []FieldError
}

func (r *Result) Fails() bool {
	return len(r.errors) > 0
}

func (r *Result) Messages() []FieldError {
	return r.errors
}

// HasRule reports whether the result contains a failure for the given field
// and rule kind.
func (r *Result) HasRule(field string, kind Kind) bool {
	for _, e := range r.errors {
		if e.Field == field && e.Rule == string(kind) {
			return true
		}
	}
	return false
}

func (r *Result) add(field string, kind Kind, messages Messages) {
	msg, ok := messages[field+"."+string(kind)]
	if !ok {
		msg = fmt.Sprintf("O campo %s é inválido", field)
	}
	r.errors = append(r.errors, FieldError{Field: field, Rule: string(kind), Message: msg})
}

// UniquenessChecker answers whether a persisted record already holds a
// value. excludeID, when non-nil, names a record whose own value must not
// count as a collision (used on updates).
type UniquenessChecker interface {
	Exists(ctx context.Context, store, column, value string, excludeID uuid.UUID) (bool, error)
}

type options struct {
	excludeID uuid.UUID
}

// Option tweaks one validation run.
type Option func(*options)

// WithExcludeID exempts the record with the given id from unique checks.
func WithExcludeID(id uuid.UUID) Option {
	return func(o *options) { o.excludeID = id }
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate evaluates the schema against the submitted values. Rules other
// than required are skipped when the field is absent or empty, which is
// what allows partial updates to reuse a schema without required rules.
// The returned error reports storage failures from unique checks only;
// validation failures live in the Result.
func Validate(ctx context.Context, values map[string]string, schema Schema, messages Messages, store UniquenessChecker, opts ...Option) (*Result, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	result := &Result{}
	for _, field := range schema {
		value, present := values[field.Name]
		value = strings.TrimSpace(value)

		for _, rule := range field.Rules {
			if rule.Kind == KindRequired {
				if !present || value == "" {
					result.add(field.Name, KindRequired, messages)
				}
				continue
			}
			if !present || value == "" {
				continue
			}

			switch rule.Kind {
			case KindMin:
				if utf8.RuneCountInString(value) < rule.Length {
					result.add(field.Name, KindMin, messages)
				}
			case KindMax:
				if utf8.RuneCountInString(value) > rule.Length {
					result.add(field.Name, KindMax, messages)
				}
			case KindEmail:
				if !emailPattern.MatchString(value) {
					result.add(field.Name, KindEmail, messages)
				}
			case KindIn:
				ok := false
				for _, token := range rule.Tokens {
					if value == token {
						ok = true
						break
					}
				}
				if !ok {
					result.add(field.Name, KindIn, messages)
				}
			case KindUnique:
				if store == nil {
					return nil, fmt.Errorf("unique rule on %q requires a uniqueness checker", field.Name)
				}
				column := rule.Column
				if column == "" {
					column = field.Name
				}
				exists, err := store.Exists(ctx, rule.Store, column, value, o.excludeID)
				if err != nil {
					return nil, fmt.Errorf("unique check for %s.%s: %w", rule.Store, column, err)
				}
				if exists {
					result.add(field.Name, KindUnique, messages)
				}
			}
		}
	}

	return result, nil
}
