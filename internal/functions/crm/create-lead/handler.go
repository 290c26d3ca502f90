package createlead

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"lead-intake/internal/common/config"
	"lead-intake/internal/common/errors"
	"lead-intake/internal/common/logger"
	"lead-intake/internal/common/metrics"
	"lead-intake/internal/common/observability"

	"github.com/google/uuid"
)

const (
	TaskType = "create-lead"

	RequestIDHeader = "X-Request-Id"

	msgLeadCreated = "Lead created successfully!"

	maxRequestBodyBytes = 1 << 20
)

type Handler struct {
	config  *Config
	logger  logger.Logger
	service LeadService
}

type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Logger        logger.Logger
	HTTPClient    *http.Client
	Observability *observability.Observability

	// Service replaces the Zoho-backed service, mainly for tests.
	Service LeadService
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	functionConfig := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)

	if err := functionConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}

	var loggerInstance logger.Logger
	if opts.Logger != nil {
		loggerInstance = opts.Logger
	} else {
		loggerInstance = logger.NewStructured("info", "json")
	}

	handler := &Handler{
		config: functionConfig,
		logger: loggerInstance,
	}

	if opts.Service != nil {
		handler.service = opts.Service
	} else {
		handler.service = NewService(ServiceDependencies{
			Logger:        loggerInstance,
			HTTPClient:    opts.HTTPClient,
			Observability: opts.Observability,
		}, functionConfig)
	}

	return handler, nil
}

// Handle runs one invocation end to end and always produces a response.
func (h *Handler) Handle(ctx context.Context, req Request) Response {
	startTime := time.Now()

	requestID := req.RequestID
	if requestID == "" {
		requestID = uuid.NewString()
	}
	log := h.logger.With(map[string]interface{}{
		"requestId": requestID,
		"function":  TaskType,
	})

	log.Info("Processing lead intake request", map[string]interface{}{
		"method":    req.Method,
		"bodyBytes": len(req.Body),
	})

	resp := h.process(ctx, req, log)
	resp.RequestID = requestID

	metrics.LeadIntakeRequests.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	metrics.LeadIntakeDuration.Observe(time.Since(startTime).Seconds())

	return resp
}

func (h *Handler) process(ctx context.Context, req Request, log logger.Logger) Response {
	if req.Method != http.MethodPost {
		return h.failure(errors.NewMethodNotAllowedError(req.Method), log)
	}

	input, err := h.parseInput(req.Body)
	if err != nil {
		return h.failure(err, log)
	}

	output, err := h.service.Execute(ctx, input)
	if err != nil {
		return h.failure(err, log)
	}

	log.Info("Lead intake completed", map[string]interface{}{
		"leadId": output.LeadID,
	})

	return Response{
		StatusCode: http.StatusOK,
		Body: ResponseBody{
			Message:    msgLeadCreated,
			ZohoLeadID: output.LeadID,
		},
	}
}

// parseInput decodes the body and checks it against the input schema. Any
// body that is valid JSON but not an object with a non-empty string phone is
// reported as a missing phone.
func (h *Handler) parseInput(body []byte) (*Input, error) {
	var document interface{}
	if err := json.Unmarshal(body, &document); err != nil {
		return nil, errors.NewInvalidJSONError(err)
	}

	result := GetInputSchema().Validate(document)
	if !result.Valid {
		return nil, errors.NewMissingPhoneError(fmt.Sprintf("validation errors: %v", result.GetErrorMessages()))
	}

	fields := document.(map[string]interface{})
	return &Input{Phone: fields["phone"].(string)}, nil
}

// failure maps err to a response. Client errors carry the message only;
// upstream errors also expose their details.
func (h *Handler) failure(err error, log logger.Logger) Response {
	status, stdErr := errors.NewErrorHandler(log).Handle(err, nil)
	metrics.LeadIntakeFailures.WithLabelValues(string(stdErr.Code)).Inc()

	body := ResponseBody{Message: stdErr.Message}
	if !errors.IsClientError(stdErr.Code) {
		details := stdErr.Details
		body.Details = &details
	}

	return Response{StatusCode: status, Body: body}
}

// ServeHTTP adapts Handle to net/http.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		h.logger.Warn("Failed to read request body", map[string]interface{}{
			"error":    err.Error(),
			"function": TaskType,
		})
		body = nil
	}

	resp := h.Handle(r.Context(), Request{
		Method:    r.Method,
		Body:      body,
		RequestID: r.Header.Get(RequestIDHeader),
	})

	writeResponse(w, resp)
}

func writeResponse(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	if resp.RequestID != "" {
		w.Header().Set(RequestIDHeader, resp.RequestID)
	}
	w.WriteHeader(resp.StatusCode)
	_ = json.NewEncoder(w).Encode(resp.Body)
}

// MarshalBody renders the response body as JSON.
func (r Response) MarshalBody() string {
	data, err := json.Marshal(r.Body)
	if err != nil {
		return fmt.Sprintf(`{"message":%q}`, errors.MsgInternal)
	}
	return string(data)
}

func (h *Handler) GetTaskType() string {
	return TaskType
}

func (h *Handler) GetConfig() *Config {
	return h.config
}
