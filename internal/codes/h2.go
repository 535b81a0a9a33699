package codes

import "github.com/coregx/dberr/internal/category"

func init() {
	Register("H2", NewTable().
		Set(category.BadSQLGrammar,
			"42000", "42001", "42101", "42102", "42111", "42112", "42121",
			"42122", "42132").
		Set(category.DuplicateKey, "23001", "23505").
		Set(category.DataIntegrityViolation,
			"22001", "22003", "22012", "22018", "22025", "23000", "23002",
			"23003", "23502", "23503", "23506", "23507", "23513").
		Set(category.PermissionDenied, "90096").
		Set(category.DataAccessResourceFailure, "90046", "90100", "90117", "90121", "90126").
		Set(category.CannotAcquireLock, "50200"))
}
