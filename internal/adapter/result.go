package adapter

// ErrorKind classifies why an operation failed.
type ErrorKind string

const (
	// KindConnection means the warehouse connection could not be opened or
	// authenticated.
	KindConnection ErrorKind = "connection"

	// KindExecution means the statement failed to execute or its rows could
	// not be fetched (unknown table, malformed identifier, ...).
	KindExecution ErrorKind = "execution"

	// KindInvalidArgument means the call was rejected before connecting.
	// Only produced with strict identifiers enabled or for missing arguments.
	KindInvalidArgument ErrorKind = "invalid_argument"
)

// Error is the structured failure carried by a Result.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Result is the outcome of one operation: formatted text on success, or a
// structured error. The empty-result messages are successes.
type Result struct {
	Text string
	Err  *Error

	// prefix is the operation-specific lead-in for rendered errors.
	prefix string
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool { return r.Err == nil }

// String renders the result as the single text reply a host expects:
// the formatted text, or the operation's error prefix followed by the
// underlying message.
func (r Result) String() string {
	if r.Err == nil {
		return r.Text
	}
	return r.prefix + r.Err.Message
}

func success(text string) Result {
	return Result{Text: text}
}

func failure(prefix string, kind ErrorKind, err error) Result {
	return Result{
		Err:    &Error{Kind: kind, Message: err.Error()},
		prefix: prefix,
	}
}

// Invalid returns a failed Result of kind KindInvalidArgument, for callers
// that reject arguments before reaching the adapter.
func Invalid(prefix string, err error) Result {
	return failure(prefix, KindInvalidArgument, err)
}
