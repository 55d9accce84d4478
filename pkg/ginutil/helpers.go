package ginutil

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ErrInvalidPage is returned when a page parameter is not an integer >= 1
var ErrInvalidPage = errors.New("page must be an integer >= 1")

// ParamInt extracts an integer from path parameters
// Returns the parsed int and error if parsing fails
func ParamInt(c *gin.Context, key string) (int, error) {
	valueStr := c.Param(key)
	return strconv.Atoi(valueStr)
}

// ParamInt64 extracts an int64 from path parameters
// Returns the parsed int64 and error if parsing fails
func ParamInt64(c *gin.Context, key string) (int64, error) {
	valueStr := c.Param(key)
	return strconv.ParseInt(valueStr, 10, 64)
}

// ParamPage extracts a 1-based page number from path parameters.
// A missing parameter means page 1.
func ParamPage(c *gin.Context, key string) (int, error) {
	if c.Param(key) == "" {
		return 1, nil
	}
	page, err := ParamInt(c, key)
	if err != nil || page < 1 {
		return 0, ErrInvalidPage
	}
	return page, nil
}
