package category

// Translated is the capability implemented by every error the translator may
// return. Custom rule targets must produce errors implementing this interface;
// that requirement is checked when the rule is registered.
type Translated interface {
	error
	// TranslatedCategory returns the category the error was classified as.
	TranslatedCategory() Category
}

// Error is the classified error returned by the translator. It carries the
// category, the task description and SQL supplied by the caller, and the raw
// driver error as its cause. The cause is never discarded.
type Error struct {
	category Category
	task     string
	sql      string
	cause    error
}

// New creates a classified error for the given category wrapping cause.
func New(cat Category, task, sql string, cause error) *Error {
	return &Error{
		category: cat,
		task:     task,
		sql:      sql,
		cause:    cause,
	}
}

// Category returns the category the error was classified as.
func (e *Error) Category() Category { return e.category }

// Task returns the caller-supplied description of the failed operation.
func (e *Error) Task() string { return e.task }

// SQL returns the statement that failed, if the caller supplied one.
func (e *Error) SQL() string { return e.sql }

// Error formats the classified error with its task and cause.
func (e *Error) Error() string {
	msg := e.category.String()
	if e.task != "" {
		msg += ": " + e.task
	}
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Unwrap returns the raw driver error.
func (e *Error) Unwrap() error { return e.cause }

// TranslatedCategory implements Translated.
func (e *Error) TranslatedCategory() Category { return e.category }

// Is supports errors.Is matching against another *Error by category,
// honoring specialization (a duplicate-key error matches a
// data-integrity-violation target).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.category.Is(t.category)
}
