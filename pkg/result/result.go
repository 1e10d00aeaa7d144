package result

// Result is the outcome envelope every command and query handler returns.
// Expected failures (duplicate key, not found, bad credentials) travel here
// instead of as errors; only infrastructure failures propagate as error.
type Result struct {
	Succeeded        bool
	Errors           []string
	ValidationErrors map[string][]string

	// notFound flags the failure for HTTP mapping (404 vs 400).
	// It is never serialized; the wire contract stays Succeeded+Errors.
	notFound bool
}

// Success returns a succeeded result with no errors.
func Success() Result {
	return Result{Succeeded: true, Errors: []string{}}
}

// Failure returns a failed result carrying a single error message.
func Failure(message string) Result {
	return Result{Succeeded: false, Errors: []string{message}}
}

// FailureList returns a failed result carrying an ordered list of messages.
func FailureList(messages []string) Result {
	return Result{Succeeded: false, Errors: messages}
}

// ValidationFailure returns a failed result with a field -> messages map.
func ValidationFailure(fields map[string][]string) Result {
	return Result{Succeeded: false, Errors: []string{}, ValidationErrors: fields}
}

// NotFound returns a failed result flagged as a missing-entity failure.
func NotFound(message string) Result {
	return Result{Succeeded: false, Errors: []string{message}, notFound: true}
}

// HasErrors reports whether any error messages are present.
func (r Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// ValidationFailed reports whether the failure is field-level.
func (r Result) ValidationFailed() bool {
	return len(r.ValidationErrors) > 0
}

// IsNotFound reports whether the failure was constructed via NotFound.
func (r Result) IsNotFound() bool {
	return r.notFound
}

// Of carries a Result plus typed data. Data is the zero value unless
// Succeeded is true.
type Of[T any] struct {
	Result
	Data T
}

// SuccessData returns a succeeded result wrapping data.
func SuccessData[T any](data T) Of[T] {
	return Of[T]{Result: Success(), Data: data}
}

// FailureOf returns a failed typed result with a single error message.
func FailureOf[T any](message string) Of[T] {
	return Of[T]{Result: Failure(message)}
}

// NotFoundOf returns a failed typed result flagged as not-found.
func NotFoundOf[T any](message string) Of[T] {
	return Of[T]{Result: NotFound(message)}
}

// ValidationFailureOf returns a failed typed result with field errors.
func ValidationFailureOf[T any](fields map[string][]string) Of[T] {
	return Of[T]{Result: ValidationFailure(fields)}
}

// PagedResult is one page of a filtered listing. All fields come straight
// from the constructing handler; nothing is recomputed.
type PagedResult[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
}

// NewPagedResult builds a page. A nil items slice becomes an empty one so
// the JSON body always carries an array.
func NewPagedResult[T any](items []T, pageNumber, pageSize, totalCount int) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{
		Items:      items,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}
}
