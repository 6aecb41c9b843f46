package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pedidolabs/order-api/internal/config"
	"github.com/pedidolabs/order-api/internal/service"
)

func TestAuth(t *testing.T) {
	cfg := config.Application{SecretKey: "test-secret", Username: "admin"}
	authService := service.NewAuthService(cfg)

	token, err := authService.IssueToken(context.Background(), "admin")
	assert.NoError(t, err)

	tests := []struct {
		name               string
		authorization      string
		expectedStatusCode int
		expectedError      string
		expectedNextCalled bool
	}{
		{
			name:               "given no authorization header should return 401",
			authorization:      "",
			expectedStatusCode: http.StatusUnauthorized,
			expectedError:      "missing token",
			expectedNextCalled: false,
		},
		{
			name:               "given malformed token should return 401",
			authorization:      "Bearer not-a-token",
			expectedStatusCode: http.StatusUnauthorized,
			expectedError:      "invalid token",
			expectedNextCalled: false,
		},
		{
			name:               "given scheme without token should return 401",
			authorization:      "Bearer",
			expectedStatusCode: http.StatusUnauthorized,
			expectedError:      "invalid token",
			expectedNextCalled: false,
		},
		{
			name:               "given valid token should call next handler",
			authorization:      "Bearer " + token,
			expectedStatusCode: http.StatusOK,
			expectedNextCalled: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/order/list", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			recorder := httptest.NewRecorder()

			Auth(cfg)(next).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatusCode, recorder.Code)
			assert.Equal(t, tt.expectedNextCalled, nextCalled)
			if tt.expectedError != "" {
				body := map[string]string{}
				err := json.NewDecoder(recorder.Body).Decode(&body)
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedError, body["error"])
			}
		})
	}
}
