package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/pill-reminder/internal/models"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, username, fullname, phone, password string) (string, models.Session, error) {
	args := m.Called(ctx, username, fullname, phone, password)
	return args.String(0), args.Get(1).(models.Session), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	authMock := new(AuthServiceMock)
	logger := newNoopLogger()

	handler := New(logger, authMock)

	session := models.Session{UID: "uid-1", Fullname: "John Doe", Username: "jdoe"}

	tests := []struct {
		name           string
		requestBody    interface{}
		mockToken      string
		mockSession    models.Session
		mockErr        error
		wantStatusCode int
		wantData       map[string]any
		wantError      string
		wantStatus     string
	}{
		{
			name: "valid registration",
			requestBody: Request{
				Username: "jdoe",
				Fullname: "John Doe",
				Phone:    "0812345",
				Password: "secret1",
			},
			mockToken:      "tok",
			mockSession:    session,
			wantStatusCode: http.StatusOK,
			wantData: map[string]any{
				"token":    "tok",
				"uid":      "uid-1",
				"fullname": "John Doe",
				"username": "jdoe",
			},
			wantStatus: "OK",
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
			wantStatus:     "Error",
		},
		{
			name: "validation error - missing fullname",
			requestBody: Request{
				Username: "jdoe",
				Phone:    "0812345",
				Password: "secret1",
			},
			wantStatusCode: http.StatusUnprocessableEntity,
			wantError:      "field Fullname is a required field",
			wantStatus:     "Error",
		},
		{
			name: "storage failure surfaces raw message",
			requestBody: Request{
				Username: "jdoe",
				Fullname: "John Doe",
				Phone:    "0812345",
				Password: "secret1",
			},
			mockErr:        errors.New(`duplicate key value violates unique constraint "users_username_key"`),
			wantStatusCode: http.StatusInternalServerError,
			wantError:      `duplicate key value violates unique constraint "users_username_key"`,
			wantStatus:     "Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock.ExpectedCalls = nil
			authMock.Calls = nil

			if req, ok := tt.requestBody.(Request); ok && req.Fullname != "" {
				authMock.On("Register", mock.Anything, req.Username, req.Fullname, req.Phone, req.Password).
					Return(tt.mockToken, tt.mockSession, tt.mockErr).Once()
			}

			var bodyBytes []byte
			var err error
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, err = json.Marshal(tt.requestBody)
				if err != nil {
					t.Fatal(err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err = json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			assert.Equal(t, tt.wantStatus, got["status"])

			if tt.wantError != "" {
				errStr, ok := got["error"].(string)
				assert.True(t, ok)
				assert.Equal(t, tt.wantError, errStr)
			}

			if tt.wantData != nil {
				data, ok := got["data"].(map[string]any)
				assert.True(t, ok)
				for k, v := range tt.wantData {
					assert.Equal(t, v, data[k])
				}
			}
		})
	}
}
