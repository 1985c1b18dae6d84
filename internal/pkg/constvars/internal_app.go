package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "ATND_SVC_"
)

const (
	RoleDefaultPractitioner = "practitioner"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusPending   = "pending"
	AppointmentStatusCanceled  = "canceled"
)

const (
	// AppointmentDateLayout is the literal calendar-day representation used
	// for storage and for the appointments-by-date lookup. Comparison is a
	// plain string match, interpreted in the practitioner's local zone.
	AppointmentDateLayout = "2006-01-02"
	AppointmentTimeLayout = "15:04"
)
