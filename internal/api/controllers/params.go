package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"ecotrip/pkg/utils"
)

// parseIDParam rejects only non-numeric ids; 0 is looked up like any other id.
func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil {
		return 0, utils.ErrInvalidID
	}
	return uint(id), nil
}
