package dberr

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// FromPQ converts a lib/pq error into a RawError. PostgreSQL identifies
// errors by SQLSTATE, so the state carries the classification and the
// numeric code stays zero.
func FromPQ(err *pq.Error) *RawError {
	return &RawError{
		State:   string(err.Code),
		Message: err.Message,
	}
}

// FromMySQL converts a go-sql-driver/mysql error into a RawError.
func FromMySQL(err *mysql.MySQLError) *RawError {
	return &RawError{
		Code:    int(err.Number),
		State:   strings.TrimRight(string(err.SQLState[:]), "\x00"),
		Message: err.Message,
	}
}

// FromSQLite converts a mattn/go-sqlite3 error into a RawError. The
// extended result code is preferred when present: it distinguishes, for
// example, a unique violation from other constraint violations.
func FromSQLite(err sqlite3.Error) *RawError {
	code := int(err.ExtendedCode)
	if code == 0 {
		code = int(err.Code)
	}
	return &RawError{
		Code:    code,
		Message: err.Error(),
	}
}

// Parse converts an arbitrary driver error into a RawError, recognizing
// the bundled drivers' native error types and the SQLState capability.
// Unrecognized errors produce a RawError carrying only the message, which
// the translator classifies as Uncategorized.
func Parse(err error) *RawError {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return FromPQ(pqErr)
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return FromMySQL(myErr)
	}
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return FromSQLite(liteErr)
	}
	var stater SQLStater
	if errors.As(err, &stater) {
		return &RawError{State: stater.SQLState(), Message: err.Error()}
	}
	return &RawError{Message: err.Error()}
}
