// Package dberr classifies raw database errors into a fixed, vendor-neutral
// set of categories so application code can branch on meaning instead of on
// driver-specific codes. It ships code tables for PostgreSQL, MySQL/MariaDB,
// SQLite, Oracle, Microsoft SQL Server, DB2 and H2, supports deployment-
// supplied custom rules and a custom translation hook, and falls back to
// SQLSTATE class classification when no vendor rule matches.
package dberr

import (
	"github.com/coregx/dberr/internal/category"
	"github.com/coregx/dberr/internal/codes"
	"github.com/coregx/dberr/internal/logger"
	"github.com/coregx/dberr/internal/tracer"
	"github.com/coregx/dberr/internal/translate"
)

type (
	// Category classifies the meaning of a database error independently of
	// the vendor.
	Category = category.Category
	// Error is the classified error returned by Translate, carrying the
	// raw driver error as its cause.
	Error = category.Error
	// Translated is the capability every translator result implements.
	Translated = category.Translated

	// RawError is a vendor database error in driver-neutral form.
	RawError = translate.RawError
	// SQLStater is implemented by driver errors that carry a SQLSTATE.
	SQLStater = translate.SQLStater
	// Translator classifies raw database errors.
	Translator = translate.Translator
	// Option configures a Translator.
	Option = translate.Option
	// CustomTranslateFunc is the hook checked before all rule tables.
	CustomTranslateFunc = translate.CustomTranslateFunc

	// Table maps vendor error codes to categories for one product.
	Table = codes.Table
	// CustomRule maps specific codes to a caller-supplied error factory.
	CustomRule = codes.CustomRule
	// Factory builds the error a custom rule resolves to.
	Factory = codes.Factory
	// Resolver locates and caches code tables per product name.
	Resolver = codes.Resolver
	// ResolverOption configures a Resolver.
	ResolverOption = codes.ResolverOption
	// Conn is a checked-out connection metadata is read from.
	Conn = codes.Conn
	// ConnectionProvider acquires connections for table resolution.
	ConnectionProvider = codes.ConnectionProvider
	// DBProvider is a ConnectionProvider backed by a *sql.DB.
	DBProvider = codes.DBProvider

	// Logger is the structured logging interface used by this package.
	Logger = logger.Logger
	// Tracer is the tracing interface used around translation.
	Tracer = tracer.Tracer
)

// Error categories, in built-in match priority order.
const (
	Uncategorized                         = category.Uncategorized
	BadSQLGrammar                         = category.BadSQLGrammar
	InvalidResultSetAccess                = category.InvalidResultSetAccess
	DuplicateKey                          = category.DuplicateKey
	DataIntegrityViolation                = category.DataIntegrityViolation
	PermissionDenied                      = category.PermissionDenied
	DeadlockLoser                         = category.DeadlockLoser
	CannotAcquireLock                     = category.CannotAcquireLock
	CannotSerializeTransaction            = category.CannotSerializeTransaction
	DataAccessResourceFailure             = category.DataAccessResourceFailure
	TransientDataAccessResourceFailure    = category.TransientDataAccessResourceFailure
	NonTransientDataAccessResourceFailure = category.NonTransientDataAccessResourceFailure
)

// ErrInvalidRuleTarget is returned when a custom rule's factory does not
// produce a Translated error.
var ErrInvalidRuleTarget = codes.ErrInvalidRuleTarget

// Re-export constructors and options.
var (
	New                 = translate.New
	WithTable           = translate.WithTable
	WithProduct         = translate.WithProduct
	WithProvider        = translate.WithProvider
	WithResolver        = translate.WithResolver
	WithCustomTranslate = translate.WithCustomTranslate
	WithLogger          = translate.WithLogger
	WithTracer          = translate.WithTracer

	NewTable           = codes.NewTable
	RegisterTable      = codes.Register
	NewResolver        = codes.NewResolver
	WithResolverLogger = codes.WithResolverLogger
	NewDBProvider      = codes.NewDBProvider
	ProductForDriver   = codes.ProductForDriver

	// NewError builds a classified error directly, for custom rule
	// factories and custom translation hooks.
	NewError = category.New

	// ClassifyState classifies a SQLSTATE by its class prefix.
	ClassifyState = translate.ClassifyState

	// NewSlogAdapter wraps a *slog.Logger for use with WithLogger.
	NewSlogAdapter = logger.NewSlogAdapter
	// NewOtelTracer wraps an OpenTelemetry tracer for use with WithTracer.
	NewOtelTracer = tracer.NewOtelTracer
)
