package utils

// ContextKey is the type for request-scoped context values
type ContextKey string

// Request context keys
const (
	RequestIDKey  ContextKey = "request_id"
	UserAgentKey  ContextKey = "user_agent"
	IPAddressKey  ContextKey = "ip_address"
	EndpointKey   ContextKey = "endpoint"
	TimeoutKey    ContextKey = "timeout"
	CancelFuncKey ContextKey = "cancel_func"
)

// Catalog constants
const (
	// DefaultPageSize is the page size applied when the client omits limit
	DefaultPageSize = 20

	// MaxPageSize is the hard cap for the limit parameter
	MaxPageSize = 100

	// MaxQualityScore is the upper bound of the quality score scale
	MaxQualityScore = 100
)

// CORS and security constants
const (
	// CORSMaxAge is the maximum age for CORS preflight requests (24 hours)
	CORSMaxAge = 86400
)
