package dberr_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/coregx/dberr"
)

func TestTranslate_PostgresUniqueViolation(t *testing.T) {
	tr := dberr.New(dberr.WithProduct("PostgreSQL"))

	raw := dberr.FromPQ(&pq.Error{
		Code:    "23505",
		Message: `duplicate key value violates unique constraint "users_email_key"`,
	})
	res := tr.Translate(context.Background(), "insert user", "INSERT INTO users (email) VALUES ($1)", raw)

	var classified *dberr.Error
	require.ErrorAs(t, res, &classified)
	assert.Equal(t, dberr.DuplicateKey, classified.Category())
	// A duplicate key is a data integrity violation; callers matching on
	// the broader category still catch it.
	assert.ErrorIs(t, res, dberr.NewError(dberr.DataIntegrityViolation, "", "", nil))
	assert.Same(t, raw, errors.Unwrap(classified))
}

func TestTranslate_LiveConnectionResolution(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	tr := dberr.New(dberr.WithProvider(dberr.NewDBProvider(db, "sqlite")))

	// 2067 is SQLITE_CONSTRAINT_UNIQUE.
	res := tr.Translate(context.Background(), "insert user", "", &dberr.RawError{Code: 2067})
	var classified *dberr.Error
	require.ErrorAs(t, res, &classified)
	assert.Equal(t, dberr.DuplicateKey, classified.Category())
}

func TestTranslate_UnreachableDatabase(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	tr := dberr.New(dberr.WithProvider(dberr.NewDBProvider(db, "sqlite")))

	// No connection, no classification; the caller decides what to do.
	res := tr.Translate(context.Background(), "insert user", "", &dberr.RawError{Code: 2067})
	assert.Nil(t, res)
}

func TestTranslate_CustomRuleThroughFacade(t *testing.T) {
	table := dberr.NewTable().Set(dberr.BadSQLGrammar, "900")
	require.NoError(t, table.AddCustomRule(dberr.CustomRule{
		Codes: []string{"900"},
		Build: func(task, sqlText string, cause error) error {
			return dberr.NewError(dberr.PermissionDenied, task, sqlText, cause)
		},
	}))

	tr := dberr.New(dberr.WithTable(table))
	res := tr.Translate(context.Background(), "task", "SQL", &dberr.RawError{Code: 900})

	var classified *dberr.Error
	require.ErrorAs(t, res, &classified)
	assert.Equal(t, dberr.PermissionDenied, classified.Category(), "custom rule shadows the built-in set")
}

func TestAddCustomRule_InvalidTargetFailsFast(t *testing.T) {
	table := dberr.NewTable()
	err := table.AddCustomRule(dberr.CustomRule{
		Codes: []string{"1"},
		Build: func(task, sqlText string, cause error) error {
			return errors.New("not a translated error")
		},
	})
	assert.ErrorIs(t, err, dberr.ErrInvalidRuleTarget)
}

func TestResolver_SharedAcrossTranslators(t *testing.T) {
	resolver := dberr.NewResolver()
	resolver.Warm("Oracle", "PostgreSQL")

	first := dberr.New(dberr.WithResolver(resolver), dberr.WithProduct("Oracle"))
	second := dberr.New(dberr.WithResolver(resolver), dberr.WithProduct("Oracle"))

	ctx := context.Background()
	raw := &dberr.RawError{Code: 60}

	var a, b *dberr.Error
	require.ErrorAs(t, first.Translate(ctx, "", "", raw), &a)
	require.ErrorAs(t, second.Translate(ctx, "", "", raw), &b)
	assert.Equal(t, a.Category(), b.Category())
	assert.Equal(t, dberr.DeadlockLoser, a.Category())
}
