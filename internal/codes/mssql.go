package codes

import "github.com/coregx/dberr/internal/category"

func init() {
	Register("Microsoft SQL Server", NewTable().
		Set(category.BadSQLGrammar, "156", "170", "207", "208", "209").
		Set(category.DuplicateKey, "2601", "2627").
		Set(category.DataIntegrityViolation, "544", "2628", "8114", "8115").
		Set(category.PermissionDenied, "229").
		Set(category.DataAccessResourceFailure, "4060").
		Set(category.CannotAcquireLock, "1222").
		Set(category.DeadlockLoser, "1205"))
}
