package createlead

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// HandleAPIGatewayProxy is the Lambda entry point for API Gateway proxy
// integrations. It never returns an error; every outcome is an HTTP response.
func (h *Handler) HandleAPIGatewayProxy(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestID := event.Headers[RequestIDHeader]
	if requestID == "" {
		requestID = event.Headers[strings.ToLower(RequestIDHeader)]
	}
	if requestID == "" {
		requestID = event.RequestContext.RequestID
	}

	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			// An undecodable body is handled like an empty one.
			h.logger.Warn("Failed to decode base64 request body", map[string]interface{}{
				"requestId": requestID,
				"error":     err.Error(),
				"function":  TaskType,
			})
			decoded = nil
		}
		body = decoded
	}

	resp := h.Handle(ctx, Request{
		Method:    event.HTTPMethod,
		Body:      body,
		RequestID: requestID,
	})

	return toProxyResponse(resp), nil
}

func toProxyResponse(resp Response) events.APIGatewayProxyResponse {
	headers := map[string]string{
		"Content-Type": "application/json",
	}
	if resp.RequestID != "" {
		headers[RequestIDHeader] = resp.RequestID
	}
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       resp.MarshalBody(),
	}
}
