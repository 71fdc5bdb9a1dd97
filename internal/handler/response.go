// Package handler provides HTTP handlers for API endpoints.
package handler

import (
	"net/http"

	"quickchat/internal/domain"
	"quickchat/internal/transport/httpdto"
	chat_errors "quickchat/pkg/errors"

	"github.com/gin-gonic/gin"
)

// writeError responds with the error text. Server-side failures are also
// attached to the context so ErrorHandler logs them.
func writeError(c *gin.Context, err error) {
	status := chat_errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.String(status, err.Error())
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.String(http.StatusBadRequest, httpdto.MsgInvalidRequestBody)
		return false
	}
	return true
}

// writeMessageList writes the stored list byte for byte.
func writeMessageList(c *gin.Context, msgs domain.MessageList) {
	c.Data(http.StatusOK, gin.MIMEJSON+"; charset=utf-8", msgs)
}
