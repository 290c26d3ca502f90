package zoho

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lead-intake/internal/common/errors"
	"lead-intake/internal/common/validation"
)

const leadsPath = "/crm/v2/Leads"

// maxResponseBytes bounds how much of a CRM response is read.
const maxResponseBytes = 1 << 20

type CRMClient struct {
	httpClient *http.Client
}

// Lead is the record sent to the Leads module.
type Lead struct {
	LastName string `json:"Last_Name"`
	Phone    string `json:"Phone"`
}

type CreateLeadRequest struct {
	Data []Lead `json:"data"`
}

type CreateLeadResponse struct {
	Data []LeadResult `json:"data"`
}

type LeadResult struct {
	Code    string      `json:"code"`
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Details LeadDetails `json:"details"`
}

type LeadDetails struct {
	ID string `json:"id"`
}

// leadResponseSchema describes the envelope we can read. "data" stays
// optional: Zoho reports request-level errors (e.g. INVALID_TOKEN) without it.
var leadResponseSchema = validation.MustCompile(map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"data": map[string]interface{}{
			"type":     "array",
			"minItems": 1,
			"items": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"status"},
				"properties": map[string]interface{}{
					"status":  map[string]interface{}{"type": "string"},
					"details": map[string]interface{}{"type": "object"},
				},
			},
		},
	},
})

func NewCRMClient(httpClient *http.Client) *CRMClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &CRMClient{httpClient: httpClient}
}

// CreateLead posts one lead to {apiDomain}/crm/v2/Leads and returns its id.
// Failures are LEAD_SUBMIT_FAILED or LEAD_RESPONSE_UNEXPECTED StandardErrors;
// when the CRM answered, details hold its compact JSON response.
func (c *CRMClient) CreateLead(ctx context.Context, apiDomain, accessToken string, lead Lead) (string, error) {
	url := strings.TrimSuffix(apiDomain, "/") + leadsPath

	jsonData, err := json.Marshal(CreateLeadRequest{Data: []Lead{lead}})
	if err != nil {
		return "", errors.NewLeadSubmitFailedError(fmt.Sprintf("failed to marshal lead: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", errors.NewLeadSubmitFailedError(fmt.Sprintf("failed to create request: %v", err))
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Zoho-oauthtoken "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.NewLeadSubmitFailedError(fmt.Sprintf("failed to execute request: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", errors.NewLeadSubmitFailedError(fmt.Sprintf("failed to read response body: %v", err))
	}

	return parseCreateLeadResponse(resp.StatusCode, body)
}

func parseCreateLeadResponse(statusCode int, body []byte) (string, error) {
	var document interface{}
	if err := json.Unmarshal(body, &document); err != nil {
		return "", errors.NewLeadSubmitFailedError(
			fmt.Sprintf("invalid JSON response (status %d): %v", statusCode, err))
	}

	serialized := compactJSON(body)

	if result := leadResponseSchema.Validate(document); !result.Valid {
		return "", errors.NewLeadResponseUnexpectedError(serialized)
	}

	var createResp CreateLeadResponse
	if err := json.Unmarshal(body, &createResp); err != nil {
		return "", errors.NewLeadResponseUnexpectedError(serialized)
	}

	if len(createResp.Data) == 0 || createResp.Data[0].Status != "success" {
		return "", errors.NewLeadSubmitFailedError(serialized)
	}

	if createResp.Data[0].Details.ID == "" {
		return "", errors.NewLeadResponseUnexpectedError(serialized)
	}

	return createResp.Data[0].Details.ID, nil
}

func compactJSON(body []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return string(body)
	}
	return buf.String()
}
