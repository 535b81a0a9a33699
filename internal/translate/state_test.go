package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/dberr/internal/category"
)

func TestClassifyState(t *testing.T) {
	tests := []struct {
		name    string
		state   string
		want    category.Category
		matched bool
	}{
		{name: "dynamic sql error class", state: "07xxx", want: category.BadSQLGrammar, matched: true},
		{name: "syntax or access rule class", state: "42601", want: category.BadSQLGrammar, matched: true},
		{name: "cardinality class", state: "21000", want: category.BadSQLGrammar, matched: true},
		{name: "unique violation exact state", state: "23505", want: category.DuplicateKey, matched: true},
		{name: "integrity constraint class", state: "23503", want: category.DataIntegrityViolation, matched: true},
		{name: "data exception class", state: "22001", want: category.DataIntegrityViolation, matched: true},
		{name: "connection exception class", state: "08006", want: category.DataAccessResourceFailure, matched: true},
		{name: "insufficient resources class", state: "53100", want: category.DataAccessResourceFailure, matched: true},
		{name: "driver failure class", state: "S1000", want: category.TransientDataAccessResourceFailure, matched: true},
		{name: "transaction rollback class", state: "40001", want: category.CannotAcquireLock, matched: true},
		{name: "deadlock state", state: "40P01", want: category.CannotAcquireLock, matched: true},
		{name: "unrecognized class", state: "99999", matched: false},
		{name: "empty state", state: "", matched: false},
		{name: "single character", state: "4", matched: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, ok := ClassifyState(tt.state)
			require.Equal(t, tt.matched, ok)
			if tt.matched {
				assert.Equal(t, tt.want, cat)
			}
		})
	}
}
