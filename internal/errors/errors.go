package errors

// The three error kinds the core produces. Handlers map them to
// 400/404/403; anything else becomes a generic 500.

// ValidationError reports a request payload that failed entity validation.
// Message carries the entity error code (e.g. "POST_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
// which the handler layer translates to a user-facing message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports a referenced thread or comment that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// AuthorizationError reports a mutation attempted by a non-owner.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ErrorWithStatusCode carries an explicit status code for failures outside
// the three core kinds (e.g. token verification).
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Is reports whether err is an instance of concrete error type T.
func Is[T error](err error) bool {
	if _, ok := err.(T); ok {
		return true
	}
	return false
}
