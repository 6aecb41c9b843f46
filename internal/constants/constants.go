package constants

const (
	AppOrderApi = "order-api"

	AudienceOrderApi = "order-api"
)
