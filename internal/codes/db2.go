package codes

import "github.com/coregx/dberr/internal/category"

func init() {
	// DB2 reports negative SQLCODEs. Product names are versioned and
	// platform-suffixed ("DB2/NT", "DB2/LINUXX8664"); the resolver
	// collapses the whole family onto this table.
	Register("DB2", NewTable().
		Set(category.BadSQLGrammar,
			"-7", "-29", "-97", "-104", "-109", "-115", "-128", "-199",
			"-204", "-206", "-301", "-408", "-441", "-491").
		Set(category.DuplicateKey, "-803").
		Set(category.DataIntegrityViolation,
			"-407", "-530", "-531", "-532", "-543", "-544", "-545", "-603", "-667").
		Set(category.DataAccessResourceFailure, "-904", "-971").
		Set(category.TransientDataAccessResourceFailure, "-1035", "-1218", "-30080", "-30081").
		Set(category.CannotAcquireLock, "-911", "-913"))
}
