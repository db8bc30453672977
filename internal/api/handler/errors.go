package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	pkgerrors "eldercare-mis/pkg/errors"
	"eldercare-mis/pkg/response"
)

// respondError maps a service error to its envelope: bad input 400,
// missing entity 404, anything else 500
func respondError(c *gin.Context, err error) {
	var input *pkgerrors.ClientInputError
	var missing *pkgerrors.NotFoundError

	switch {
	case errors.As(err, &input):
		var fields interface{}
		if len(input.Fields) > 0 {
			fields = input.Fields
		}
		response.BadRequest(c, input.Message, fields)
	case errors.As(err, &missing):
		response.NotFound(c, missing.Error())
	default:
		_ = c.Error(err)
		response.InternalError(c, err)
	}
}
