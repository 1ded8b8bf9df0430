package usecase

// Error kinds mirror the response taxonomy: bad input, missing credential,
// policy denial, absent resource, infrastructure fault. Handlers map kinds
// to HTTP statuses; the message travels into the response body.
type ErrorKind int

const (
	KindInvalid ErrorKind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindInternal
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Invalid(message string) error {
	return &Error{Kind: KindInvalid, Message: message}
}

func Unauthorized(message string) error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Internal(message string) error {
	return &Error{Kind: KindInternal, Message: message}
}
