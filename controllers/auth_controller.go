package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"travelcms/dto"
	"travelcms/models"
	"travelcms/response"
	"travelcms/services"
	"travelcms/services/logger"
)

// AdminKey is the gin context key holding the signed-in *models.AdminUser
const AdminKey = "admin"

type Authenticator interface {
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	GoogleLogin(ctx context.Context, idToken string) (*services.LoginResult, error)
}

type AuthController struct {
	auth   Authenticator
	logger logger.Logger
}

func NewAuthController(auth Authenticator, log logger.Logger) *AuthController {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthController{auth: auth, logger: log}
}

func (ac *AuthController) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := ac.auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		handleError(c, ac.logger, err)
		return
	}
	response.Success(c, result)
}

func (ac *AuthController) Google(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	result, err := ac.auth.GoogleLogin(c.Request.Context(), input.TokenID)
	if err != nil {
		handleError(c, ac.logger, err)
		return
	}
	response.Success(c, result)
}

// Me returns the signed-in admin
func (ac *AuthController) Me(c *gin.Context) {
	admin, ok := c.Get(AdminKey)
	if !ok {
		response.Unauthorized(c)
		return
	}
	response.Success(c, admin.(*models.AdminUser))
}
