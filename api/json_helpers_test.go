package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", bytes.NewBufferString(body))
	return c, w
}

func TestReadJSON(t *testing.T) {
	app := &application{}
	tests := []struct {
		name          string
		body          string
		expectedError string
		validationReq bool
	}{
		{
			name:          "Valid JSON",
			body:          `{"email":"example@hello.com"}`,
			expectedError: "",
			validationReq: true,
		},
		{
			name:          "Invalid JSON",
			body:          `{"email":}`,
			expectedError: "invalid character '}' looking for beginning of value",
			validationReq: false,
		},
		{
			name:          "More than one JSON object",
			body:          `{"email":"example@hello.com"},{"whoops":"more data"}`,
			expectedError: "body must only contain a single JSON value",
			validationReq: false,
		},
		{
			name:          "Unknown Field",
			body:          `{"unknown":"field"}`,
			expectedError: "json: unknown field \"unknown\"",
			validationReq: false,
		},
		{
			name:          "Missing Required Field",
			body:          `{"email":""}`,
			expectedError: "Key: 'Email' Error:Field validation for 'Email' failed on the 'required' tag",
			validationReq: true,
		},
		{
			name:          "Invalid Field",
			body:          `{"email":"example@hello"}`,
			expectedError: "Key: 'Email' Error:Field validation for 'Email' failed on the 'email' tag",
			validationReq: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testContext(tt.body)
			var data struct {
				Email string `json:"email" validate:"required,email"`
			}
			err := app.ReadJSON(c, &data, tt.validationReq)
			if tt.expectedError == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.expectedError)
			}
		})
	}
}

func TestSendSuccessJSON(t *testing.T) {
	app := &application{}
	tests := []struct {
		name         string
		data         interface{}
		wrap         []string
		expectedData interface{}
	}{
		{
			name:         "Normal Data",
			data:         map[string]string{"key": "value"},
			wrap:         nil,
			expectedData: map[string]interface{}{"key": "value"},
		},
		{
			name:         "Wrapped Data",
			data:         map[string]string{"key": "value"},
			wrap:         []string{"wrapped"},
			expectedData: map[string]interface{}{"wrapped": map[string]interface{}{"key": "value"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext("")
			app.SendSuccessJSON(c, http.StatusOK, tt.data, tt.wrap...)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

			var response successJSON
			err := json.NewDecoder(w.Body).Decode(&response)
			assert.NoError(t, err)
			assert.Equal(t, "success", response.Status)
			assert.Equal(t, tt.expectedData, response.Data)
		})
	}
}

func TestSendErrorJSON(t *testing.T) {
	app := &application{}
	tests := []struct {
		name           string
		statusCode     int
		er             error
		expectedStatus string
	}{
		{
			name:           "Client Error",
			statusCode:     http.StatusBadRequest,
			er:             errors.New("An error occurred"),
			expectedStatus: "fail",
		},
		{
			name:           "Server Error",
			statusCode:     http.StatusInternalServerError,
			er:             errors.New("Internal server error"),
			expectedStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext("")
			app.SendErrorJSON(c, tt.statusCode, tt.er)
			assert.Equal(t, tt.statusCode, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

			var response errorJSON
			err := json.NewDecoder(w.Body).Decode(&response)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, response.Status)
			assert.Equal(t, tt.er.Error(), response.Message)
		})
	}
}

func TestSendFieldErrors(t *testing.T) {
	app := &application{}
	c, w := testContext("")
	app.SendFieldErrors(c, http.StatusUnprocessableEntity, map[string]string{
		"email": "has already been taken",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response errorJSON
	err := json.NewDecoder(w.Body).Decode(&response)
	assert.NoError(t, err)
	assert.Equal(t, "fail", response.Status)
	assert.Empty(t, response.Message)
	assert.Equal(t, map[string]string{"email": "has already been taken"}, response.Errors)
}
