package createlead

import (
	"context"
	"time"

	commonhttp "lead-intake/internal/common/http"
	"lead-intake/internal/common/logger"
	"lead-intake/internal/common/metrics"
	"lead-intake/internal/common/observability"
	"lead-intake/internal/common/zoho"

	"go.opentelemetry.io/otel/attribute"
)

const (
	operationTokenRefresh = "token_refresh"
	operationCreateLead   = "create_lead"
)

// TokenRefresher exchanges the stored refresh token for an access token.
type TokenRefresher interface {
	RefreshAccessToken(ctx context.Context, creds zoho.Credentials) (string, error)
}

// LeadCreator inserts a single lead and returns its CRM id.
type LeadCreator interface {
	CreateLead(ctx context.Context, apiDomain, accessToken string, lead zoho.Lead) (string, error)
}

// LeadService is what the handler needs from the business layer.
type LeadService interface {
	Execute(ctx context.Context, input *Input) (*Output, error)
}

type Service struct {
	config *Config
	logger logger.Logger
	tokens TokenRefresher
	crm    LeadCreator
	obs    *observability.Observability
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	log := deps.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	httpClient := deps.HTTPClient
	if httpClient == nil {
		httpClient = commonhttp.NewClient(config.Timeout, log).HTTPClient()
	}

	tokens := deps.TokenClient
	if tokens == nil {
		tokens = zoho.NewTokenClient(httpClient)
	}

	crm := deps.CRMClient
	if crm == nil {
		crm = zoho.NewCRMClient(httpClient)
	}

	obs := deps.Observability
	if obs == nil {
		obs = observability.NewNoop(TaskType)
	}

	return &Service{
		config: config,
		logger: log,
		tokens: tokens,
		crm:    crm,
		obs:    obs,
	}
}

// Execute refreshes an access token and then creates the lead. The CRM is
// never contacted when the token step fails.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	token, err := s.refreshToken(ctx)
	if err != nil {
		return nil, err
	}

	leadID, err := s.createLead(ctx, token, input.Phone)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Lead created in Zoho CRM", map[string]interface{}{
		"leadId": leadID,
	})

	return &Output{LeadID: leadID}, nil
}

func (s *Service) refreshToken(ctx context.Context) (string, error) {
	accountsDomain := s.config.Zoho.ResolveAccountsDomain()
	ctx, span := s.obs.StartSpan(ctx, "zoho.token.refresh",
		attribute.String("zoho.accounts_domain", accountsDomain),
	)

	start := time.Now()
	token, err := s.tokens.RefreshAccessToken(ctx, s.config.Zoho)
	s.recordCall(ctx, operationTokenRefresh, start, err)
	observability.EndSpan(span, err)

	if err != nil {
		s.logger.Warn("Zoho token refresh failed", map[string]interface{}{
			"accountsDomain": accountsDomain,
			"error":          err.Error(),
		})
		return "", err
	}
	return token, nil
}

func (s *Service) createLead(ctx context.Context, token, phone string) (string, error) {
	ctx, span := s.obs.StartSpan(ctx, "zoho.lead.create",
		attribute.String("zoho.api_domain", s.config.Zoho.APIDomain),
	)

	lead := zoho.Lead{
		LastName: s.config.LeadLastName,
		Phone:    phone,
	}

	start := time.Now()
	leadID, err := s.crm.CreateLead(ctx, s.config.Zoho.APIDomain, token, lead)
	s.recordCall(ctx, operationCreateLead, start, err)
	observability.EndSpan(span, err)

	if err != nil {
		return "", err
	}
	return leadID, nil
}

func (s *Service) recordCall(ctx context.Context, operation string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.ZohoAPICalls.WithLabelValues(operation, result).Inc()
	s.obs.RecordCall(ctx, operation, time.Since(start), err)
}
