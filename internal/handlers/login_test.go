package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/pzaremba/book-library-api/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		body            string
		mockSetup       func(m *MockLoginer)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "Success",
			body: `{"username":"alice","password":"password123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice", "password123").Return("token123", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "InvalidJSON",
			body:           `{invalid`,
			mockSetup:      func(m *MockLoginer) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "WrongPassword",
			body: `{"username":"alice","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice", "wrong").
					Return("", services.ErrInvalidCredentials)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid username or password",
		},
		{
			name: "UnknownUser",
			body: `{"username":"ghost","password":"password123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "ghost", "password123").
					Return("", services.ErrUserDoesNotExist)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "Invalid username or password",
		},
		{
			name: "InternalError",
			body: `{"username":"alice","password":"password123"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().Login(gomock.Any(), "alice", "password123").
					Return("", errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var body map[string]any
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "token123", body["token"])
			} else {
				assert.Equal(t, false, body["success"])
			}
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, body["message"])
			}
		})
	}
}
