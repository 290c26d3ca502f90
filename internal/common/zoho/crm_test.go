package zoho

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lead-intake/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRMClient_CreateLead_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/crm/v2/Leads", r.URL.Path)
		assert.Equal(t, "Zoho-oauthtoken tok123", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"data":[{"Last_Name":"BBC New Lead","Phone":"+15551234567"}]}`, string(body))

		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"data": []interface{}{
				map[string]interface{}{
					"code":    "SUCCESS",
					"status":  "success",
					"message": "record added",
					"details": map[string]interface{}{"id": "LEAD1"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewCRMClient(server.Client())
	id, err := client.CreateLead(context.Background(), server.URL, "tok123", Lead{
		LastName: "BBC New Lead",
		Phone:    "+15551234567",
	})

	require.NoError(t, err)
	assert.Equal(t, "LEAD1", id)
}

func TestCRMClient_CreateLead_TrailingSlashDomain(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/crm/v2/Leads", r.URL.Path)
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"data": []interface{}{
				map[string]interface{}{"status": "success", "details": map[string]interface{}{"id": "LEAD2"}},
			},
		})
	}))
	defer server.Close()

	id, err := NewCRMClient(server.Client()).CreateLead(context.Background(), server.URL+"/", "tok", Lead{Phone: "1"})
	require.NoError(t, err)
	assert.Equal(t, "LEAD2", id)
}

func TestCRMClient_CreateLead_Failures(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		rawBody      string
		wantCode     errors.ErrorCode
		wantContains string
	}{
		{
			name:         "record level error",
			status:       http.StatusOK,
			rawBody:      `{"data":[{"status":"error","message":"duplicate"}]}`,
			wantCode:     errors.ErrCodeLeadSubmitFailed,
			wantContains: `{"data":[{"status":"error","message":"duplicate"}]}`,
		},
		{
			name:         "request level error without data",
			status:       http.StatusUnauthorized,
			rawBody:      `{"code":"INVALID_TOKEN","details":{},"message":"invalid oauth token","status":"error"}`,
			wantCode:     errors.ErrCodeLeadSubmitFailed,
			wantContains: "INVALID_TOKEN",
		},
		{
			name:         "empty data array",
			status:       http.StatusOK,
			rawBody:      `{"data":[]}`,
			wantCode:     errors.ErrCodeLeadResponseUnexpected,
			wantContains: `{"data":[]}`,
		},
		{
			name:         "data is not an array",
			status:       http.StatusOK,
			rawBody:      `{"data":"nope"}`,
			wantCode:     errors.ErrCodeLeadResponseUnexpected,
			wantContains: "nope",
		},
		{
			name:         "success without details",
			status:       http.StatusCreated,
			rawBody:      `{"data":[{"status":"success"}]}`,
			wantCode:     errors.ErrCodeLeadResponseUnexpected,
			wantContains: "success",
		},
		{
			name:         "success with non string id",
			status:       http.StatusCreated,
			rawBody:      `{"data":[{"status":"success","details":{"id":12}}]}`,
			wantCode:     errors.ErrCodeLeadResponseUnexpected,
			wantContains: `"id":12`,
		},
		{
			name:         "top level array",
			status:       http.StatusOK,
			rawBody:      `[1,2,3]`,
			wantCode:     errors.ErrCodeLeadResponseUnexpected,
			wantContains: "[1,2,3]",
		},
		{
			name:         "not json",
			status:       http.StatusBadGateway,
			rawBody:      `<html>bad gateway</html>`,
			wantCode:     errors.ErrCodeLeadSubmitFailed,
			wantContains: "invalid JSON response (status 502)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.rawBody))
			}))
			defer server.Close()

			id, err := NewCRMClient(server.Client()).CreateLead(context.Background(), server.URL, "tok", Lead{Phone: "1"})

			assert.Empty(t, id)
			stdErr := requireStandardError(t, err, tt.wantCode)
			assert.Equal(t, errors.MsgLeadSubmitFailed, stdErr.Message)
			assert.Contains(t, stdErr.Details, tt.wantContains)
		})
	}
}

func TestCRMClient_CreateLead_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewCRMClient(nil).CreateLead(context.Background(), url, "tok", Lead{Phone: "1"})

	stdErr := requireStandardError(t, err, errors.ErrCodeLeadSubmitFailed)
	assert.Contains(t, stdErr.Details, "failed to execute request")
}

func TestCRMClient_CreateLead_EmptyDomain(t *testing.T) {
	_, err := NewCRMClient(nil).CreateLead(context.Background(), "", "tok", Lead{Phone: "1"})
	requireStandardError(t, err, errors.ErrCodeLeadSubmitFailed)
}

func TestCompactJSON(t *testing.T) {
	assert.Equal(t, `{"a":[1,2]}`, compactJSON([]byte("{ \"a\" : [1, 2] }\n")))
	assert.Equal(t, "not json", compactJSON([]byte("not json")))

	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(compactJSON([]byte(`{"data":[{"status":"error"}]}`))), &v))
}
