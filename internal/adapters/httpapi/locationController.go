package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LocationController struct {
	lc     LocationUseCase
	logger *zap.Logger
}

func NewLocationController(lc LocationUseCase, logger *zap.Logger) *LocationController {
	return &LocationController{lc: lc, logger: logger}
}

func (ctl *LocationController) ListLocations(c *gin.Context) {
	res, err := ctl.lc.ListLocations(c.Request.Context())
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": res})
}
