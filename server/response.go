package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ubcspin/REMO1-dataProcessing/errors"
)

// DataResponse is the standard success envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// RespondWithError inspects err: an *errors.AnalysisError derives its
// status and structured body automatically; anything else becomes a
// generic 500.
func RespondWithError(c *gin.Context, err error) {
	if aerr, ok := errors.AsAnalysisError(err); ok {
		c.JSON(aerr.HTTPStatus, aerr.ToResponse())
		return
	}
	c.JSON(http.StatusInternalServerError, errors.Internal(err).ToResponse())
}

// RespondOK sends a 200 response wrapping data.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}
