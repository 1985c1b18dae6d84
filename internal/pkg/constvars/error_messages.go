package constvars

// Validation messages mapper, keyed by validator tag
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"alphanum":     "must contain only alphanumeric characters",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"oneof":        "must be one of [%s]",
	"numeric":      "must be a number",
	"len":          "must be %s characters long",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"password":     "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"phone_number": "must be a valid phone number",
	"date_ymd":     "must be a calendar date in YYYY-MM-DD format",
	"time_hm":      "must be a time of day in HH:MM format",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"len":   true,
	"gt":    true,
	"gte":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientResourceNotFound              = "the requested resource does not exist"
	ErrClientResourceForbidden             = "you don't have access to this resource"
)

// Error messages for developers
const (
	ErrDevInvalidInput           = "invalid input"
	ErrDevCannotParseJSON        = "cannot parse JSON"
	ErrDevValidationFailed       = "validation failed"
	ErrDevFailedToHashPassword   = "failed to hash password"
	ErrDevInvalidCredentials     = "invalid credentials"
	ErrDevEmailAlreadyExists     = "email already exists"
	ErrDevUsernameAlreadyExists  = "username already exists"
	ErrDevResourceNotFound       = "resource not found"
	ErrDevResourceNotOwned       = "resource owned by another practitioner"
	ErrDevServerDeadlineExceeded = "server deadline exceeded"
	ErrDevServerProcess          = "internal server error while processing the request"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthTokenInvalidOrExpired = "token invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthStoreSession          = "failed to store session"

	// URL params
	ErrDevURLParamIDValidationFailed = "failed to validate URL param: %s"
)
