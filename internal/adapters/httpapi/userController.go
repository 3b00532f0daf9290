package httpapi

import (
	"net/http"

	"blogicum/internal/adapters/httpapi/middleware"
	"blogicum/internal/core/pagination"
	"blogicum/internal/core/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserController struct {
	uc     UserUseCase
	pc     PostUseCase
	logger *zap.Logger
}

func NewUserController(uc UserUseCase, pc PostUseCase, logger *zap.Logger) *UserController {
	return &UserController{uc: uc, pc: pc, logger: logger}
}

func (ctl *UserController) LoginUser(c *gin.Context) {
	var form user.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		invalidInput(c)
		return
	}
	res, err := ctl.uc.LoginUser(c.Request.Context(), form)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *UserController) RegisterUser(c *gin.Context) {
	var form user.RegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		invalidInput(c)
		return
	}
	u, err := ctl.uc.RegisterUser(c.Request.Context(), form)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (ctl *UserController) LogoutUser(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	if err := ctl.uc.LogoutUser(c.Request.Context(), identity); err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": "/"})
}

func (ctl *UserController) Profile(c *gin.Context) {
	res, err := ctl.pc.ListProfilePosts(
		c.Request.Context(),
		c.Param("username"),
		middleware.ViewerID(c),
		pagination.ParsePage(c.Query("page")),
	)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	var form user.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		invalidInput(c)
		return
	}
	res, err := ctl.uc.UpdateProfile(c.Request.Context(), middleware.ViewerID(c), form)
	if err != nil {
		writeError(c, ctl.logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
