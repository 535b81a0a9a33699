// Package category defines the closed set of database error categories and the
// translated error type returned by the translator. Categories are vendor-neutral:
// application code branches on a Category instead of on driver-specific codes.
package category

// Category classifies the meaning of a database error independently of the vendor.
type Category int

const (
	// Uncategorized means the error was seen but no rule matched it.
	Uncategorized Category = iota
	// BadSQLGrammar indicates invalid SQL: syntax errors, unknown tables or columns.
	BadSQLGrammar
	// InvalidResultSetAccess indicates invalid access to a result set, such as
	// reading a column with the wrong type.
	InvalidResultSetAccess
	// DuplicateKey indicates a violated unique or primary key constraint.
	// It is a specialization of DataIntegrityViolation.
	DuplicateKey
	// DataIntegrityViolation indicates a violated integrity constraint:
	// foreign key, not-null, check.
	DataIntegrityViolation
	// PermissionDenied indicates insufficient privileges for the statement.
	PermissionDenied
	// DeadlockLoser indicates the current operation was chosen as the victim
	// of a deadlock.
	DeadlockLoser
	// CannotAcquireLock indicates a lock could not be obtained, typically a
	// lock wait timeout.
	CannotAcquireLock
	// CannotSerializeTransaction indicates the transaction could not complete
	// at serializable isolation.
	CannotSerializeTransaction
	// DataAccessResourceFailure indicates the underlying resource failed:
	// connection lost, storage exhausted.
	DataAccessResourceFailure
	// TransientDataAccessResourceFailure is a resource failure that may
	// succeed on retry without intervention. Specializes DataAccessResourceFailure.
	TransientDataAccessResourceFailure
	// NonTransientDataAccessResourceFailure is a resource failure that will
	// not resolve without intervention. Specializes DataAccessResourceFailure.
	NonTransientDataAccessResourceFailure
)

var categoryNames = map[Category]string{
	Uncategorized:                         "uncategorized",
	BadSQLGrammar:                         "bad sql grammar",
	InvalidResultSetAccess:                "invalid result set access",
	DuplicateKey:                          "duplicate key",
	DataIntegrityViolation:                "data integrity violation",
	PermissionDenied:                      "permission denied",
	DeadlockLoser:                         "deadlock loser",
	CannotAcquireLock:                     "cannot acquire lock",
	CannotSerializeTransaction:            "cannot serialize transaction",
	DataAccessResourceFailure:             "data access resource failure",
	TransientDataAccessResourceFailure:    "transient data access resource failure",
	NonTransientDataAccessResourceFailure: "non-transient data access resource failure",
}

// String returns the human-readable name of the category.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "uncategorized"
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Is reports whether c satisfies target, honoring specialization:
// DuplicateKey satisfies DataIntegrityViolation, and both resource-failure
// variants satisfy DataAccessResourceFailure.
func (c Category) Is(target Category) bool {
	if c == target {
		return true
	}
	switch c {
	case DuplicateKey:
		return target == DataIntegrityViolation
	case TransientDataAccessResourceFailure, NonTransientDataAccessResourceFailure:
		return target == DataAccessResourceFailure
	}
	return false
}
