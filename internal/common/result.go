package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Result is the single envelope returned by every mutation endpoint.
// OK is the only success signal; Message is for humans.
type Result struct {
	OK      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ItemResult reports the outcome of one id inside a bulk mutation
type ItemResult struct {
	ID      int64  `json:"id"`
	OK      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BulkResult is the envelope of a bulk mutation. OK is true only when every item succeeded.
type BulkResult struct {
	Result
	Results []ItemResult `json:"results"`
}

// NewResult builds a Result whose code is derived from status
func NewResult(status int, message string) Result {
	return Result{
		OK:      status == http.StatusOK,
		Code:    getErrorCode(status),
		Message: message,
	}
}

// NewItemResult builds an ItemResult whose code is derived from status
func NewItemResult(id int64, status int, message string) ItemResult {
	r := NewResult(status, message)
	return ItemResult{ID: id, OK: r.OK, Code: r.Code, Message: r.Message}
}

// ResultResponse writes a mutation envelope with a status mirroring its outcome
func ResultResponse(c *gin.Context, status int, message string) {
	c.JSON(status, NewResult(status, message))
}

// ResultErrorResponse writes a failed mutation envelope and attaches err for the request logger
func ResultErrorResponse(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.JSON(status, NewResult(status, message))
}

// BulkResponse writes a bulk mutation envelope. The HTTP status is 200 even on partial
// failure; callers inspect OK and the per-item results.
func BulkResponse(c *gin.Context, items []ItemResult, okMessage, partialMessage string) {
	allOK := true
	for _, it := range items {
		if !it.OK {
			allOK = false
			break
		}
	}
	res := BulkResult{Results: items}
	if allOK {
		res.Result = NewResult(http.StatusOK, okMessage)
	} else {
		res.Result = Result{OK: false, Code: "PARTIAL_FAILURE", Message: partialMessage}
	}
	c.JSON(http.StatusOK, res)
}
