package httpapi

import (
	"errors"
	"net/http"

	"blogicum/internal/adapters/httpapi/middleware"
	"blogicum/internal/core/pagination"
	"blogicum/internal/core/policy"
	"blogicum/internal/core/post"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type PostController struct {
	pc     PostUseCase
	denial policy.DenialMode
	logger *zap.Logger
}

func NewPostController(pc PostUseCase, denial policy.DenialMode, logger *zap.Logger) *PostController {
	return &PostController{pc: pc, denial: denial, logger: logger}
}

func (ctl *PostController) Index(c *gin.Context) {
	page, err := ctl.pc.ListIndex(c.Request.Context(), pagination.ParsePage(c.Query("page")))
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (ctl *PostController) PostDetail(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		notFound(c)
		return
	}
	res, err := ctl.pc.GetPost(c.Request.Context(), postID, middleware.ViewerID(c))
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var form post.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		invalidInput(c)
		return
	}
	// نویسنده همیشه از توکن گرفته می‌شود
	res, err := ctl.pc.CreatePost(c.Request.Context(), middleware.ViewerID(c), form)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.Header("Location", "/posts/"+res.ID)
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		notFound(c)
		return
	}
	var form post.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		invalidInput(c)
		return
	}
	res, err := ctl.pc.UpdatePost(c.Request.Context(), middleware.ViewerID(c), postID, form)
	if err != nil {
		ctl.fail(c, postID, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		notFound(c)
		return
	}
	if err := ctl.pc.DeletePost(c.Request.Context(), middleware.ViewerID(c), postID); err != nil {
		ctl.fail(c, postID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": profileURL(c.GetString(middleware.ContextUsername))})
}

// fail answers a refused mutation according to the configured denial mode.
func (ctl *PostController) fail(c *gin.Context, postID uuid.UUID, err error) {
	if errors.Is(err, policy.ErrNotOwner) && ctl.denial == policy.DenyRedirect {
		c.Redirect(http.StatusFound, postURL(postID))
		return
	}
	writeError(c, ctl.logger, err)
}
