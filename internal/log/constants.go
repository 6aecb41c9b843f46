package log

const (
	KeyAppName       = "app"
	KeyConfig        = "config"
	KeyOrderID       = "orderId"
	KeyOrders        = "orders"
	KeyProcess       = "process"
	KeyRequestBody   = "requestBody"
	KeyRequestHeader = "requestHeader"
	KeyRequestHost   = "host"
	KeyRequestID     = "requestId"
	KeyRequestIp     = "requesterIP"
	KeyRequestMethod = "requestMethod"
	KeyRequestURI    = "requestURI"
	KeyRequestURL    = "requestURL"
	KeyTag           = "tag"
	KeyUsername      = "username"
)
