package codes

import "github.com/coregx/dberr/internal/category"

func init() {
	// PostgreSQL reports a zero numeric code and a meaningful SQLSTATE,
	// so its table is keyed on the state string.
	Register("PostgreSQL", NewTable().UseSQLState().
		Set(category.BadSQLGrammar, "03000", "42000", "42601", "42602", "42622", "42804", "42P01").
		Set(category.DuplicateKey, "21000", "23505").
		Set(category.DataIntegrityViolation, "23000", "23502", "23503", "23514").
		Set(category.PermissionDenied, "42501").
		Set(category.DataAccessResourceFailure, "53000", "53100", "53200", "53300").
		Set(category.CannotAcquireLock, "55P03").
		Set(category.CannotSerializeTransaction, "40001").
		Set(category.DeadlockLoser, "40P01"))
}
