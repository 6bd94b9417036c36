package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cinespot/cinespot-api/internal/application"
	"github.com/cinespot/cinespot-api/pkg/response"
)

// fail flattens any service error into the {success:false, message}
// envelope. The error kind only selects the HTTP status; no taxonomy
// detail reaches the body.
func fail(c *gin.Context, err error) {
	ae := application.AsError(err)
	resp := response.Error[any](c, statusFor(ae.Kind), ae.Message, nil)
	c.JSON(resp.Status, resp)
}

func statusFor(kind application.ErrKind) int {
	switch kind {
	case application.KindValidation:
		return http.StatusBadRequest
	case application.KindNotFound:
		return http.StatusNotFound
	case application.KindCredential:
		return http.StatusUnauthorized
	case application.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func ok[T any](c *gin.Context, data T, message string) {
	resp := response.Success(c, http.StatusOK, data, message, nil)
	c.JSON(resp.Status, resp)
}

func badPayload(c *gin.Context, details any) {
	resp := response.Error[any](c, http.StatusBadRequest, "invalid payload", details)
	c.JSON(resp.Status, resp)
}
