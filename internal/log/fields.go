package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldKind          = "kind"
	FieldSourceID      = "source_id"
	FieldDueAt         = "due_at"
	FieldDaysRemaining = "days_remaining"
	FieldUrgency       = "urgency"
	FieldWindowDays    = "window_days"
	FieldCurrency      = "currency"
	FieldAmountCents   = "amount_cents"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentExpiry    = "expiry"
	ComponentCurrency  = "currency"
	ComponentStorage   = "storage"
	ComponentAMQP      = "amqp"
	ComponentWorker    = "worker"
	ComponentRecords   = "records"
	ComponentCache     = "cache"
	ComponentRateLimit = "rate_limit"
	ComponentTrace     = "trace"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpList     = "list"
	OpScan     = "scan"
	OpAlert    = "alert"
	OpConvert  = "convert"
	OpValidate = "validate"
	OpShutdown = "shutdown"
	OpStartup  = "startup"
)
