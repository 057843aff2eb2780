package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
)

type successJSON struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

type errorJSON struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

var validate = validator.New()

// ReadJSON decodes the request body into data. It rejects unknown fields,
// bodies over one megabyte, and bodies carrying more than one JSON value.
// When validationReq is set the decoded struct is also run through the
// validator.
func (app *application) ReadJSON(c *gin.Context, data interface{}, validationReq bool) error {
	maxBytes := 1024 * 1024 // one megabyte
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(maxBytes))
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	// attempt to decode the data
	err := dec.Decode(data)
	if err != nil {
		return err
	}

	// make sure only one JSON value in payload
	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must only contain a single JSON value")
	}

	if validationReq {
		err := validate.Struct(data)
		if err != nil {
			return err
		}
	}

	return nil
}

func (app *application) SendSuccessJSON(c *gin.Context, statusCode int, data interface{}, wrap ...string) {
	jsonRes := successJSON{
		Status: "success",
	}

	if len(wrap) > 0 {
		jsonRes.Data = map[string]interface{}{wrap[0]: data}
	} else {
		jsonRes.Data = data
	}

	c.JSON(statusCode, jsonRes)
}

func (app *application) SendErrorJSON(c *gin.Context, statusCode int, err error) {
	jsonRes := errorJSON{}
	if statusCode >= 500 {
		jsonRes.Status = "error"
	} else {
		jsonRes.Status = "fail"
	}

	jsonRes.Message = err.Error()

	c.JSON(statusCode, jsonRes)
}

// SendFieldErrors reports failures tied to specific request fields, e.g.
// {"email": "has already been taken"}.
func (app *application) SendFieldErrors(c *gin.Context, statusCode int, fields map[string]string) {
	c.JSON(statusCode, errorJSON{
		Status: "fail",
		Errors: fields,
	})
}
