package codes

import "github.com/coregx/dberr/internal/category"

func init() {
	Register("Oracle", NewTable().
		Set(category.BadSQLGrammar, "900", "903", "904", "917", "936", "942", "6550", "17006").
		Set(category.InvalidResultSetAccess, "17003").
		Set(category.DuplicateKey, "1").
		Set(category.DataIntegrityViolation, "1400", "1722", "2291", "2292").
		Set(category.PermissionDenied, "1031").
		Set(category.DataAccessResourceFailure, "17002", "17447").
		Set(category.CannotAcquireLock, "54", "30006").
		Set(category.CannotSerializeTransaction, "8177").
		Set(category.DeadlockLoser, "60"))
}
