package codes

import "github.com/coregx/dberr/internal/category"

func init() {
	// SQLite primary and extended result codes. Drivers differ on which
	// of the two they surface, so both forms appear where they matter.
	Register("SQLite", NewTable().
		Set(category.BadSQLGrammar, "1").
		Set(category.DuplicateKey, "1555", "2067").
		Set(category.DataIntegrityViolation, "19", "275", "787", "1299").
		Set(category.PermissionDenied, "23").
		Set(category.CannotAcquireLock, "5", "6").
		Set(category.DataAccessResourceFailure, "10", "13", "14"))
}
