package i18n

// Common errors
var (
	ErrNotFound       = NewErrorWithCode("ErrorResourceNotFound", ErrorNotFound)
	ErrUnauthorized   = NewErrorWithCode("ErrorUnauthenticated", ErrorUnauthorized)
	ErrForbidden      = NewErrorWithCode("ErrorForbidden", ErrorForbidden)
	ErrBadRequest     = NewErrorWithCode("ErrorBadRequest", ErrorBadRequest)
	ErrInternalServer = NewErrorWithCode("ErrorInternalServer", ErrorInternalServer)
)

// Storage errors
var (
	ErrStorageNotConfigured = NewErrorWithCode("ErrorStorageNotConfigured", ErrorServiceUnavailable)
)

// User and role errors
var (
	ErrUserNotFound        = NewErrorWithCode("ErrorUserNotFound", ErrorNotFound)
	ErrInvalidUserID       = NewErrorWithCode("ErrorInvalidUserID", ErrorBadRequest)
	ErrInvalidRole         = NewErrorWithCode("ErrorInvalidRole", ErrorBadRequest)
	ErrSuperAdminImmutable = NewErrorWithCode("SUPER_ADMIN_IMMUTABLE", ErrorBadRequest)
	ErrSelfDelete          = NewErrorWithCode("ErrorSelfDelete", ErrorBadRequest)
	ErrIdentityDeleteFail  = NewErrorWithCode("ErrorIdentityDeleteFailed", ErrorBadGateway)
)

// Settings errors
var (
	ErrMalformedBody = NewErrorWithCode("ErrorMalformedBody", ErrorBadRequest)
)
