package codes

import (
	"context"
	"database/sql"
)

// Conn is a checked-out connection the resolver reads metadata from.
// Whoever obtains a Conn must close it, on every path.
type Conn interface {
	// ProductName returns the database product name for the connection.
	ProductName(ctx context.Context) (string, error)
	// Close releases the connection back to its pool.
	Close() error
}

// ConnectionProvider acquires connections for metadata-based table
// resolution. Connect may block on network I/O and may fail; a failure
// means "cannot classify", not "unknown product".
type ConnectionProvider interface {
	Connect(ctx context.Context) (Conn, error)
}

// driverProducts maps database/sql driver names to product names.
// database/sql exposes no product metadata, so the shipped provider
// derives the product from the driver the pool was opened with.
var driverProducts = map[string]string{
	"postgres":  "PostgreSQL",
	"pgx":       "PostgreSQL",
	"mysql":     "MySQL",
	"sqlite":    "SQLite",
	"sqlite3":   "SQLite",
	"sqlserver": "Microsoft SQL Server",
	"mssql":     "Microsoft SQL Server",
	"oci8":      "Oracle",
	"godror":    "Oracle",
}

// ProductForDriver returns the product name for a database/sql driver name.
// Unrecognized driver names pass through unchanged; they resolve to an
// empty table downstream.
func ProductForDriver(driverName string) string {
	if p, ok := driverProducts[driverName]; ok {
		return p
	}
	return driverName
}

// DBProvider is a ConnectionProvider backed by a *sql.DB. Connect checks a
// real connection out of the pool, so pool exhaustion and unreachable
// servers surface as acquisition failures exactly like a dedicated
// metadata connection would.
type DBProvider struct {
	db         *sql.DB
	driverName string
}

// NewDBProvider creates a provider for the pool opened with driverName.
func NewDBProvider(db *sql.DB, driverName string) *DBProvider {
	return &DBProvider{db: db, driverName: driverName}
}

// Connect checks out a connection. The caller must Close the returned Conn.
func (p *DBProvider) Connect(ctx context.Context) (Conn, error) {
	conn, err := p.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return &dbConn{conn: conn, product: ProductForDriver(p.driverName)}, nil
}

type dbConn struct {
	conn    *sql.Conn
	product string
}

func (c *dbConn) ProductName(ctx context.Context) (string, error) {
	if err := c.conn.PingContext(ctx); err != nil {
		return "", err
	}
	return c.product, nil
}

func (c *dbConn) Close() error {
	return c.conn.Close()
}
