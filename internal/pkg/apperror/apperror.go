package apperror

const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeUnprocessable = "UNPROCESSABLE"
	CodeBadGateway    = "BAD_GATEWAY"
	CodeInternalError = "INTERNAL_ERROR"
)

type AppError struct {
	Code       string
	Kind       string
	Message    string
	HTTPStatus int
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// WithKind returns a copy carrying a machine-readable sub-kind
// (e.g. "too-large", "empty-code").
func (e *AppError) WithKind(kind string) *AppError {
	clone := *e
	clone.Kind = kind
	return &clone
}

// WithMessage returns a copy carrying a server-provided message.
func (e *AppError) WithMessage(message string) *AppError {
	clone := *e
	clone.Message = message
	return &clone
}

func (e *AppError) Error() string {
	return e.Message
}

// Is matches on code and kind so errors.Is works across WithKind/WithMessage
// copies.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Kind == t.Kind
}
