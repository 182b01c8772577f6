package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"vecindia.com/denunciasbackend/pkg/apperror"
)

func idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: el identificador debe ser un entero positivo", apperror.ErrFormatoInvalido)
	}
	return uint(id), nil
}
