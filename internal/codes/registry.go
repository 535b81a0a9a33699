package codes

import "strings"

var registry = make(map[string]*Table)

// Register adds a table to the built-in registry under a normalized product
// key. Called from init funcs in this package; deployments may register
// additional products before first use.
func Register(product string, t *Table) {
	registry[normalizeProduct(product)] = t
}

// Registered returns the table registered for the product, or an empty
// table if the product is unknown. Unknown products are not an error:
// callers fall through to SQLSTATE fallback classification.
func Registered(product string) *Table {
	if t, ok := registry[normalizeProduct(product)]; ok {
		return t
	}
	return NewTable()
}

// normalizeProduct collapses the product name variants different drivers
// report into one registry key. Matching is case-insensitive; the DB2 and
// SQL Server families report versioned or platform-suffixed names.
func normalizeProduct(product string) string {
	p := strings.ToLower(strings.TrimSpace(product))
	switch {
	case strings.HasPrefix(p, "db2"):
		return "db2"
	case strings.Contains(p, "sql server"):
		return "mssql"
	case strings.Contains(p, "mariadb"):
		return "mysql"
	case strings.HasPrefix(p, "postgres"):
		return "postgresql"
	case strings.HasPrefix(p, "sqlite"):
		return "sqlite"
	case strings.HasPrefix(p, "oracle"):
		return "oracle"
	}
	return p
}
