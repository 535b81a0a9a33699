// Package translate implements the error translation service: it resolves
// the code table for the database in use, runs custom and built-in rules
// against a raw driver error and falls back to SQLSTATE classification when
// no vendor rule matches.
package translate

import (
	"fmt"
	"strconv"

	"github.com/coregx/dberr/internal/codes"
)

// SQLStater is the conventional capability of driver errors that carry a
// SQLSTATE.
type SQLStater interface {
	SQLState() string
}

// RawError is a vendor database error in driver-neutral form: a numeric
// vendor code, an optional SQLSTATE, an optional message and an optional
// chained error. It is immutable for the duration of a translate call.
type RawError struct {
	// Code is the vendor-specific numeric error code.
	Code int
	// State is the SQLSTATE reported with the error, if any.
	State string
	// Message is the driver's error message, if any.
	Message string
	// Batch marks the error as a batch/aggregate wrapper: classification
	// and the reported cause both come from the chained error.
	Batch bool
	// Chained is the nested error a batch or truncation wrapper points at.
	Chained *RawError
}

// Error formats the raw error with its code and state.
func (r *RawError) Error() string {
	msg := "sql error " + strconv.Itoa(r.Code)
	if r.State != "" {
		msg += " [" + r.State + "]"
	}
	if r.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, r.Message)
	}
	return msg
}

// SQLState returns the error's SQLSTATE.
func (r *RawError) SQLState() string { return r.State }

// Unwrap returns the chained error, if any.
func (r *RawError) Unwrap() error {
	if r.Chained == nil {
		return nil
	}
	return r.Chained
}

// lookupKey returns the key a table matches this error under: the SQLSTATE
// for state-keyed tables, the numeric code otherwise.
func (r *RawError) lookupKey(t *codes.Table) string {
	if t.SQLStateKeyed() {
		return r.State
	}
	return strconv.Itoa(r.Code)
}
