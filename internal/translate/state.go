package translate

import "github.com/coregx/dberr/internal/category"

// SQLSTATE class prefixes, grouped by meaning. The groups follow the
// standard class assignments and are deliberately coarse: this classifier
// is the safety net for databases whose code table has no entry.
var (
	badGrammarClasses = []string{
		"07", // dynamic SQL error
		"21", // cardinality violation
		"2A", // syntax error (direct SQL)
		"37", // syntax error (dynamic SQL)
		"42", // syntax error or access rule violation
		"65", // Oracle: unknown identifier
	}
	integrityViolationClasses = []string{
		"01", // warning
		"02", // no data
		"22", // data exception
		"23", // integrity constraint violation
		"27", // triggered data change violation
		"44", // with check option violation
	}
	resourceFailureClasses = []string{
		"08", // connection exception
		"53", // insufficient resources
		"54", // program limit exceeded
		"57", // operator intervention
		"58", // system error
	}
	transientFailureClasses = []string{
		"JW", // transient failures (DB2)
		"JZ", // Sybase: generic failures
		"S1", // memory/driver failures
	}
	concurrencyClasses = []string{
		"40", // transaction rollback
		"61", // Oracle: deadlock or timeout
	}
)

// duplicateKeyStates are matched exactly before class matching; a unique
// violation is more specific than its integrity-violation class.
var duplicateKeyStates = map[string]struct{}{
	"23505": {},
}

// ClassifyState maps a SQLSTATE to a category by its two-character class
// prefix. It reports false for an absent, malformed or unrecognized state.
func ClassifyState(state string) (category.Category, bool) {
	if len(state) < 2 {
		return category.Uncategorized, false
	}
	if _, ok := duplicateKeyStates[state]; ok {
		return category.DuplicateKey, true
	}

	class := state[:2]
	switch {
	case contains(badGrammarClasses, class):
		return category.BadSQLGrammar, true
	case contains(integrityViolationClasses, class):
		return category.DataIntegrityViolation, true
	case contains(resourceFailureClasses, class):
		return category.DataAccessResourceFailure, true
	case contains(transientFailureClasses, class):
		return category.TransientDataAccessResourceFailure, true
	case contains(concurrencyClasses, class):
		return category.CannotAcquireLock, true
	}
	return category.Uncategorized, false
}

func contains(classes []string, class string) bool {
	for _, c := range classes {
		if c == class {
			return true
		}
	}
	return false
}
