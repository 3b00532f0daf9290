package httpapi

import (
	"net/http"

	"blogicum/internal/core/pagination"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryController struct {
	cc     CategoryUseCase
	logger *zap.Logger
}

func NewCategoryController(cc CategoryUseCase, logger *zap.Logger) *CategoryController {
	return &CategoryController{cc: cc, logger: logger}
}

func (ctl *CategoryController) CategoryPosts(c *gin.Context) {
	res, err := ctl.cc.GetCategoryPage(c.Request.Context(), c.Param("category_slug"), pagination.ParsePage(c.Query("page")))
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CategoryController) ListCategories(c *gin.Context) {
	res, err := ctl.cc.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": res})
}
