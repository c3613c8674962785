package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mekdahl/barkassa-api/internal/domain/enum"
	"github.com/mekdahl/barkassa-api/internal/presentation/http/dto/response"
	"github.com/mekdahl/barkassa-api/pkg/apperror"
)

// respondAggregationError distinguishes corrupt stored rows, which
// surface as unknown-value decode failures, from ordinary service
// errors. A corrupt row is a data problem, not a client mistake.
func respondAggregationError(c *gin.Context, err error) {
	var unknown *enum.UnknownValueError
	if errors.As(err, &unknown) {
		response.Error(c, apperror.NewUnprocessableError(err.Error()))
		return
	}
	response.Error(c, err)
}
