package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int
		expectedStatus int
	}{
		{name: "200 OK", statusCodes: []int{http.StatusOK}, expectedStatus: http.StatusOK},
		{name: "201 Created", statusCodes: []int{http.StatusCreated}, expectedStatus: http.StatusCreated},
		{name: "second call ignored", statusCodes: []int{http.StatusNotFound, http.StatusOK}, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := &responseWriter{ResponseWriter: rr}

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, w.status)
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_WriteAccumulatesSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, _ = w.Write([]byte("hello"))
	_, _ = w.Write([]byte(", world"))

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, 12, w.size)
	assert.Equal(t, "hello, world", rr.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	assert.Same(t, rr, w.Unwrap())
}
