package codes

import "github.com/coregx/dberr/internal/category"

func init() {
	// Covers MariaDB as well; the resolver collapses both product names
	// onto this table.
	Register("MySQL", NewTable().
		Set(category.BadSQLGrammar, "1054", "1064", "1146").
		Set(category.DuplicateKey, "1062").
		Set(category.DataIntegrityViolation,
			"630", "839", "840", "893", "1169", "1215", "1216", "1217",
			"1364", "1451", "1452", "1557").
		Set(category.PermissionDenied, "1044", "1045", "1142").
		Set(category.DataAccessResourceFailure, "1", "1040", "1129").
		Set(category.CannotAcquireLock, "1205", "3572").
		Set(category.DeadlockLoser, "1213"))
}
