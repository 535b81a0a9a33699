package translate

import (
	"context"
	"sync"

	otelcodes "go.opentelemetry.io/otel/codes"

	"github.com/coregx/dberr/internal/category"
	"github.com/coregx/dberr/internal/codes"
	"github.com/coregx/dberr/internal/logger"
	"github.com/coregx/dberr/internal/tracer"
)

// CustomTranslateFunc is the caller-supplied hook checked before every
// other rule. A non-nil result is returned to the caller as-is; a nil
// result hands classification back to the rule table.
type CustomTranslateFunc func(task, sql string, raw *RawError) error

// Translator classifies raw database errors into categories. A Translator
// is bound to one code table, supplied directly or resolved lazily from a
// connection provider on the first call. Safe for concurrent use.
type Translator struct {
	mu       sync.Mutex
	table    *codes.Table
	resolver *codes.Resolver
	provider codes.ConnectionProvider
	custom   CustomTranslateFunc
	log      logger.Logger
	sanitize *logger.Sanitizer
	trace    tracer.Tracer
	product  string
}

// Option is a functional option for configuring a Translator.
type Option func(*Translator)

// WithTable binds the translator to a code table directly. No connection is
// ever acquired.
func WithTable(t *codes.Table) Option {
	return func(tr *Translator) {
		tr.table = t
	}
}

// WithProduct binds the translator to the built-in table for a product name.
func WithProduct(product string) Option {
	return func(tr *Translator) {
		tr.table = tr.resolver.Lookup(product)
		tr.product = product
	}
}

// WithProvider defers table resolution to the first translate call, which
// acquires a connection from the provider to learn the product name. While
// acquisition keeps failing, translate returns nil for every input.
func WithProvider(p codes.ConnectionProvider) Option {
	return func(tr *Translator) {
		tr.provider = p
	}
}

// WithResolver replaces the translator's resolver, sharing another
// translator's table cache.
func WithResolver(r *codes.Resolver) Option {
	return func(tr *Translator) {
		if r != nil {
			tr.resolver = r
		}
	}
}

// WithCustomTranslate installs the custom translation hook. It runs before
// custom rules and built-in sets and wins whenever it returns non-nil.
func WithCustomTranslate(fn CustomTranslateFunc) Option {
	return func(tr *Translator) {
		tr.custom = fn
	}
}

// WithLogger sets the logger. Defaults to no logging.
func WithLogger(log logger.Logger) Option {
	return func(tr *Translator) {
		if log != nil {
			tr.log = log
		}
	}
}

// WithTracer sets the tracer. Defaults to no tracing.
func WithTracer(t tracer.Tracer) Option {
	return func(tr *Translator) {
		if t != nil {
			tr.trace = t
		}
	}
}

// New creates a translator. Without WithTable, WithProduct or WithProvider
// the translator has an empty table and classifies by SQLSTATE fallback
// only.
func New(opts ...Option) *Translator {
	tr := &Translator{
		resolver: codes.NewResolver(),
		log:      &logger.NoopLogger{},
		sanitize: logger.NewSanitizer(""),
		trace:    &tracer.NoopTracer{},
	}
	for _, opt := range opts {
		opt(tr)
	}
	return tr
}

// Resolver returns the translator's resolver, for cache warming or reset.
func (t *Translator) Resolver() *codes.Resolver { return t.resolver }

// Translate classifies a raw database error.
//
// task describes the operation that failed, sql is the statement text if
// known, and raw is the driver error. The returned error carries raw (or,
// for a batch wrapper, the wrapped error) as its cause and is non-nil for
// every well-formed input except one case: a nil result means the code
// table could not be resolved because no connection could be acquired, and
// the caller should classify by other means. "No rule matched" is not that
// case; it yields an Uncategorized result.
//
// Two calls with the same inputs against the same table return equal
// categories and identical causes.
func (t *Translator) Translate(ctx context.Context, task, sqlText string, raw *RawError) error {
	ctx, span := t.trace.StartSpan(ctx, "dberr.translate")
	defer span.End()

	table, ok := t.tableFor(ctx)
	if !ok {
		span.SetStatus(otelcodes.Error, "code table resolution failed")
		return nil
	}

	// A batch wrapper reports the chained error; classify and return that.
	eff := raw
	if raw.Batch && raw.Chained != nil {
		eff = raw.Chained
	}

	meta := tracer.TranslationMetadata{
		Product:   t.product,
		ErrorCode: eff.Code,
		SQLState:  eff.State,
	}

	result := t.classify(table, task, sqlText, eff, &meta)
	meta.Category = categoryName(result)
	tracer.AddTranslationAttributes(span, &meta)
	return result
}

func (t *Translator) classify(table *codes.Table, task, sqlText string, eff *RawError, meta *tracer.TranslationMetadata) error {
	if t.custom != nil {
		if res := t.custom(task, sqlText, eff); res != nil {
			return res
		}
	}

	key := eff.lookupKey(table)
	if build, ok := table.MatchCustom(key); ok {
		return build(task, sqlText, eff)
	}
	if cat, ok := table.Match(key); ok {
		return category.New(cat, task, sqlText, eff)
	}

	// Truncation-style wrappers carry a zero or unmapped code and point at
	// the real error. Classify by the nested code, keep the wrapper as cause.
	for nested := eff.Chained; nested != nil; nested = nested.Chained {
		if cat, ok := table.Match(nested.lookupKey(table)); ok {
			return category.New(cat, task, sqlText, eff)
		}
	}

	if cat, ok := ClassifyState(eff.State); ok {
		meta.Fallback = true
		t.log.Debug("classified by sqlstate fallback",
			"state", eff.State, "code", eff.Code,
			"category", cat.String(), "sql", t.sanitize.MaskSQL(sqlText))
		return category.New(cat, task, sqlText, eff)
	}

	t.log.Debug("no rule matched, returning uncategorized",
		"code", eff.Code, "state", eff.State,
		"sql", t.sanitize.MaskSQL(sqlText))
	return category.New(category.Uncategorized, task, sqlText, eff)
}

// tableFor returns the bound table, resolving it from the provider on
// first use. It reports false only when resolution needed a connection and
// none could be acquired. Failures are not cached; the next call retries.
func (t *Translator) tableFor(ctx context.Context) (*codes.Table, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.table != nil {
		return t.table, true
	}
	if t.provider == nil {
		t.table = codes.NewTable()
		return t.table, true
	}

	table, err := t.resolver.Resolve(ctx, t.provider)
	if err != nil {
		return nil, false
	}
	t.table = table
	return table, true
}

func categoryName(err error) string {
	if translated, ok := err.(category.Translated); ok {
		return translated.TranslatedCategory().String()
	}
	return ""
}
