// Package codes holds the vendor error-code tables and their resolution.
// Each supported database product registers a Table mapping its raw error
// codes to categories; the Resolver locates the right table for a product
// name or a live connection and caches it for the life of the process.
package codes

import (
	"errors"

	"github.com/coregx/dberr/internal/category"
)

// ErrInvalidRuleTarget is returned when a custom rule's factory does not
// produce a translated error. The check runs at registration time so a bad
// rule fails the configuration, not a later translate call.
var ErrInvalidRuleTarget = errors.New("custom rule factory must produce a category.Translated error")

// Factory builds the error a custom rule resolves to. It receives the
// caller's task description, the failed SQL and the raw driver error.
type Factory func(task, sql string, cause error) error

// CustomRule maps a set of vendor codes to a caller-supplied error factory.
// Custom rules are checked before the built-in category sets, in
// registration order, first match wins.
type CustomRule struct {
	// Codes the rule triggers on, in the table's lookup key space.
	Codes []string
	// Build constructs the resulting error. Must produce a
	// category.Translated error; validated at registration.
	Build Factory
}

// categoryPriority is the order in which built-in category sets are checked.
// Codes may appear in more than one set; the earlier category wins.
var categoryPriority = []category.Category{
	category.BadSQLGrammar,
	category.InvalidResultSetAccess,
	category.DuplicateKey,
	category.DataIntegrityViolation,
	category.PermissionDenied,
	category.DeadlockLoser,
	category.CannotAcquireLock,
	category.CannotSerializeTransaction,
	category.DataAccessResourceFailure,
	category.TransientDataAccessResourceFailure,
	category.NonTransientDataAccessResourceFailure,
}

// Table maps vendor error codes to categories for one database product.
// A table is built once, at registration or configuration time, and is
// read-only afterwards; concurrent lookups need no locking.
type Table struct {
	// useSQLState keys lookups on the error's SQLSTATE instead of its
	// numeric code. PostgreSQL reports meaningful SQLSTATEs and a zero
	// numeric code, so its table is state-keyed.
	useSQLState bool
	codes       map[category.Category]map[string]struct{}
	custom      []CustomRule
}

// NewTable creates an empty code table.
func NewTable() *Table {
	return &Table{
		codes: make(map[category.Category]map[string]struct{}),
	}
}

// UseSQLState makes the table key lookups on SQLSTATE strings instead of
// numeric error codes. Returns the table for chaining during construction.
func (t *Table) UseSQLState() *Table {
	t.useSQLState = true
	return t
}

// SQLStateKeyed reports whether the table keys lookups on SQLSTATE.
func (t *Table) SQLStateKeyed() bool { return t.useSQLState }

// Set assigns the given codes to a category, replacing nothing: codes
// accumulate across calls. Returns the table for chaining.
func (t *Table) Set(cat category.Category, codes ...string) *Table {
	set, ok := t.codes[cat]
	if !ok {
		set = make(map[string]struct{}, len(codes))
		t.codes[cat] = set
	}
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return t
}

// AddCustomRule appends a custom rule. The rule's factory is probed once
// with throwaway arguments; if it does not produce a category.Translated
// error the registration fails with ErrInvalidRuleTarget.
func (t *Table) AddCustomRule(rule CustomRule) error {
	if rule.Build == nil {
		return ErrInvalidRuleTarget
	}
	probe := rule.Build("", "", errors.New("probe"))
	if _, ok := probe.(category.Translated); !ok {
		return ErrInvalidRuleTarget
	}
	t.custom = append(t.custom, rule)
	return nil
}

// Match returns the first category, in priority order, whose code set
// contains key.
func (t *Table) Match(key string) (category.Category, bool) {
	if key == "" {
		return category.Uncategorized, false
	}
	for _, cat := range categoryPriority {
		if set, ok := t.codes[cat]; ok {
			if _, ok := set[key]; ok {
				return cat, true
			}
		}
	}
	return category.Uncategorized, false
}

// MatchCustom returns the factory of the first custom rule, in registration
// order, that triggers on key.
func (t *Table) MatchCustom(key string) (Factory, bool) {
	if key == "" {
		return nil, false
	}
	for _, rule := range t.custom {
		for _, c := range rule.Codes {
			if c == key {
				return rule.Build, true
			}
		}
	}
	return nil, false
}

// Empty reports whether the table has no codes and no custom rules.
// Unknown products resolve to an empty table so callers fall through to
// SQLSTATE fallback classification.
func (t *Table) Empty() bool {
	return len(t.codes) == 0 && len(t.custom) == 0
}
