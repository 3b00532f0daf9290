package httpapi

import (
	"errors"
	"net/http"

	"blogicum/internal/adapters/httpapi/middleware"
	"blogicum/internal/core/comment"
	"blogicum/internal/core/policy"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentController struct {
	cc     CommentUseCase
	logger *zap.Logger
}

func NewCommentController(cc CommentUseCase, logger *zap.Logger) *CommentController {
	return &CommentController{cc: cc, logger: logger}
}

func (ctl *CommentController) AddComment(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		notFound(c)
		return
	}
	var form comment.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		invalidInput(c)
		return
	}
	res, err := ctl.cc.AddComment(c.Request.Context(), middleware.ViewerID(c), postID, form)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *CommentController) UpdateComment(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		notFound(c)
		return
	}
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		notFound(c)
		return
	}
	var form comment.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		invalidInput(c)
		return
	}
	res, err := ctl.cc.UpdateComment(c.Request.Context(), middleware.ViewerID(c), postID, commentID, form)
	if err != nil {
		// کامنت دیگران: بازگشت به صفحه پست
		if errors.Is(err, policy.ErrNotOwner) {
			c.Redirect(http.StatusFound, postURL(postID))
			return
		}
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CommentController) DeleteComment(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		notFound(c)
		return
	}
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		notFound(c)
		return
	}
	if err := ctl.cc.DeleteComment(c.Request.Context(), middleware.ViewerID(c), postID, commentID); err != nil {
		if errors.Is(err, policy.ErrNotOwner) {
			c.Redirect(http.StatusFound, postURL(postID))
			return
		}
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": postURL(postID)})
}
