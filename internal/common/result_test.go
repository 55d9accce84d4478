package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResult(t *testing.T) {
	assert.Equal(t, Result{OK: true, Code: "OK", Message: "done"}, NewResult(http.StatusOK, "done"))
	assert.Equal(t, Result{OK: false, Code: "NOT_FOUND", Message: "missing"}, NewResult(http.StatusNotFound, "missing"))
}

func TestBulkResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		items    []ItemResult
		wantOK   bool
		wantCode string
		wantMsg  string
	}{
		{
			name:     "all succeeded",
			items:    []ItemResult{NewItemResult(1, http.StatusOK, "ok"), NewItemResult(2, http.StatusOK, "ok")},
			wantOK:   true,
			wantCode: "OK",
			wantMsg:  "all",
		},
		{
			name:     "one failed",
			items:    []ItemResult{NewItemResult(1, http.StatusOK, "ok"), NewItemResult(2, http.StatusNotFound, "missing")},
			wantOK:   false,
			wantCode: "PARTIAL_FAILURE",
			wantMsg:  "partial",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			BulkResponse(c, tt.items, "all", "partial")

			assert.Equal(t, http.StatusOK, w.Code)
			var res BulkResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
			assert.Equal(t, tt.wantOK, res.OK)
			assert.Equal(t, tt.wantCode, res.Code)
			assert.Equal(t, tt.wantMsg, res.Message)
			assert.Len(t, res.Results, len(tt.items))
		})
	}
}

func TestErrorResponse_HidesCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ErrorResponse(c, http.StatusInternalServerError, "조회 실패", errors.New("dial tcp 10.0.0.1:3306: refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.1")
	assert.JSONEq(t, `{"error":{"code":"INTERNAL_SERVER_ERROR","message":"조회 실패"}}`, w.Body.String())
	require.Len(t, c.Errors, 1)
}
