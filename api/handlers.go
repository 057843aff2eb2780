package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// serverError logs the full failure locally and sends the caller a generic
// response; storage internals never leak outward.
func (app *application) serverError(c *gin.Context, err error) {
	requestID, _ := c.Get("request_id")
	app.Logger.Error("internal error",
		"request_id", requestID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	app.SendErrorJSON(c, http.StatusInternalServerError, errors.New("internal server error"))
}

func parseIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %q", c.Param("id"))
	}
	return id, nil
}

// queryInt64 reads an optional integer query parameter. An absent parameter
// is nil; a present but non-numeric one is an error.
func queryInt64(c *gin.Context, key string) (*int64, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number", key)
	}
	return &n, nil
}

func queryString(c *gin.Context, key string) *string {
	raw, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	return &raw
}

func queryLimit(c *gin.Context) (*int, error) {
	raw, ok := c.GetQuery("limit")
	if !ok {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return nil, errors.New("limit must be a positive number")
	}
	return &n, nil
}
