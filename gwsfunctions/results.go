package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every operation answers with the same envelope. The status code mirrors
// the code field: 200 for success, 400 for everything else, including
// downstream API rejections.
type OpResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type failReason int

const (
	reasonMissingParam failReason = iota
	reasonNotFound
	reasonFailed
)

type opError struct {
	reason failReason
	msg    string
}

func (e *opError) Error() string {
	return e.msg
}

func missingParam(field string) *opError {
	return &opError{reason: reasonMissingParam, msg: fmt.Sprintf("Missing parameter: %s", field)}
}

func notFound(kind, name string) *opError {
	return &opError{reason: reasonNotFound, msg: fmt.Sprintf("%s, %s does not exist.", kind, name)}
}

func opFailed(action string, err error) *opError {
	return &opError{reason: reasonFailed, msg: fmt.Sprintf("Failed to %s. Error: %v", action, err)}
}

func respondOK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, OpResponse{Status: "success", Message: message, Code: http.StatusOK})
}

func respondErr(c *gin.Context, opErr *opError) {
	ErrorLog.Println(opErr.msg)
	c.JSON(http.StatusBadRequest, OpResponse{Status: "error", Message: opErr.msg, Code: http.StatusBadRequest})
}
