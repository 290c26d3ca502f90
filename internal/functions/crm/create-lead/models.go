package createlead

import (
	"net/http"

	"lead-intake/internal/common/logger"
	"lead-intake/internal/common/observability"
)

// Request is the transport-neutral view of an inbound invocation.
type Request struct {
	Method    string
	Body      []byte
	RequestID string
}

type Response struct {
	StatusCode int
	Body       ResponseBody
	RequestID  string
}

// ResponseBody is the JSON object written back to the caller.
type ResponseBody struct {
	Message    string  `json:"message"`
	ZohoLeadID string  `json:"zoho_lead_id,omitempty"`
	Details    *string `json:"details,omitempty"`
}

type Input struct {
	Phone string `json:"phone"`
}

type Output struct {
	LeadID string `json:"zoho_lead_id"`
}

type ServiceDependencies struct {
	Logger        logger.Logger
	HTTPClient    *http.Client
	TokenClient   TokenRefresher
	CRMClient     LeadCreator
	Observability *observability.Observability
}
