package domain

import (
	"fmt"
	"strings"
)

// reservedWords is the subset of SQLite keywords that may not be used as
// bare table or column names. SQLite would accept some of these when
// quoted, but this layer never quotes identifiers, so they are rejected
// outright.
var reservedWords = map[string]struct{}{
	"ADD": {}, "ALL": {}, "ALTER": {}, "AND": {}, "AS": {}, "AUTOINCREMENT": {},
	"BETWEEN": {}, "BY": {}, "CASE": {}, "CHECK": {}, "COLLATE": {},
	"COLUMN": {}, "COMMIT": {}, "CONSTRAINT": {}, "CREATE": {}, "CROSS": {},
	"DEFAULT": {}, "DELETE": {}, "DISTINCT": {}, "DROP": {}, "ELSE": {},
	"ESCAPE": {}, "EXCEPT": {}, "EXISTS": {}, "FOREIGN": {}, "FROM": {},
	"GROUP": {}, "HAVING": {}, "IN": {}, "INDEX": {}, "INNER": {},
	"INSERT": {}, "INTERSECT": {}, "INTO": {}, "IS": {}, "ISNULL": {},
	"JOIN": {}, "LEFT": {}, "LIKE": {}, "LIMIT": {}, "NOT": {}, "NOTNULL": {},
	"NULL": {}, "ON": {}, "OR": {}, "ORDER": {}, "OUTER": {}, "PRIMARY": {},
	"REFERENCES": {}, "SELECT": {}, "SET": {}, "TABLE": {}, "THEN": {},
	"TO": {}, "TRANSACTION": {}, "UNION": {}, "UNIQUE": {}, "UPDATE": {},
	"USING": {}, "VALUES": {}, "WHEN": {}, "WHERE": {},
}

// ValidateIdentifier checks that name is safe to interpolate into SQL text
// as a table or column name: non-empty, ASCII letters/digits/underscores
// only, not starting with a digit, and not a reserved word.
func ValidateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidIdentifier)
	}

	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return fmt.Errorf("%w: %q starts with a digit", ErrInvalidIdentifier, name)
			}
		default:
			return fmt.Errorf("%w: %q contains %q", ErrInvalidIdentifier, name, r)
		}
	}

	if _, ok := reservedWords[strings.ToUpper(name)]; ok {
		return fmt.Errorf("%w: %q is a reserved word", ErrInvalidIdentifier, name)
	}

	return nil
}

// Validate checks the table name and every column name in the spec.
// A spec with no columns is invalid; the engine requires at least one.
func (t TableSpec) Validate() error {
	if err := ValidateIdentifier(t.Name); err != nil {
		return fmt.Errorf("table name: %w", err)
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("%w: table %q has no columns", ErrInvalidInput, t.Name)
	}
	for _, col := range t.Columns {
		if err := ValidateIdentifier(col.Name); err != nil {
			return fmt.Errorf("column name: %w", err)
		}
	}
	return nil
}
