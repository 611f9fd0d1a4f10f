package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/linkup-api/internal/models"
)

// parseID reads the :id path parameter, answering 400 when it is not a positive integer
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, models.NewMessage("Invalid id format"))
		return 0, false
	}
	return uint(id), true
}

// storageFailure answers 500 with the raw storage error
func storageFailure(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, models.NewMessage(err.Error()))
}
