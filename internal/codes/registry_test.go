package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/dberr/internal/category"
)

func TestRegistered_BuiltInProducts(t *testing.T) {
	tests := []struct {
		name    string
		product string
		code    string
		want    category.Category
	}{
		{name: "oracle duplicate key", product: "Oracle", code: "1", want: category.DuplicateKey},
		{name: "mysql deadlock", product: "MySQL", code: "1213", want: category.DeadlockLoser},
		{name: "postgres serialization", product: "PostgreSQL", code: "40001", want: category.CannotSerializeTransaction},
		{name: "sql server grammar", product: "Microsoft SQL Server", code: "156", want: category.BadSQLGrammar},
		{name: "db2 duplicate key", product: "DB2", code: "-803", want: category.DuplicateKey},
		{name: "h2 lock timeout", product: "H2", code: "50200", want: category.CannotAcquireLock},
		{name: "sqlite unique violation", product: "SQLite", code: "2067", want: category.DuplicateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Registered(tt.product)
			require.False(t, table.Empty())
			cat, ok := table.Match(tt.code)
			require.True(t, ok)
			assert.Equal(t, tt.want, cat)
		})
	}
}

func TestRegistered_UnknownProductIsEmptyTable(t *testing.T) {
	table := Registered("FoobarDB")
	require.NotNil(t, table)
	assert.True(t, table.Empty())
}

func TestNormalizeProduct(t *testing.T) {
	tests := []struct {
		name    string
		product string
		want    string
	}{
		{name: "case insensitive", product: "ORACLE", want: "oracle"},
		{name: "surrounding whitespace", product: "  PostgreSQL ", want: "postgresql"},
		{name: "postgres short form", product: "Postgres", want: "postgresql"},
		{name: "db2 platform suffix", product: "DB2/NT", want: "db2"},
		{name: "db2 linux variant", product: "DB2/LINUXX8664", want: "db2"},
		{name: "microsoft sql server", product: "Microsoft SQL Server", want: "mssql"},
		{name: "bare sql server", product: "SQL Server", want: "mssql"},
		{name: "mariadb collapses to mysql", product: "MariaDB", want: "mysql"},
		{name: "sqlite versioned", product: "SQLite 3.39", want: "sqlite"},
		{name: "unknown passes through", product: "FoobarDB", want: "foobardb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeProduct(tt.product))
		})
	}
}

func TestRegistered_MariaDBSharesMySQLTable(t *testing.T) {
	assert.Same(t, Registered("MySQL"), Registered("MariaDB"))
}

func TestRegister_DeploymentTable(t *testing.T) {
	table := NewTable().Set(category.BadSQLGrammar, "1234")
	Register("TestOnlyDB", table)
	assert.Same(t, table, Registered("testonlydb"))
}
