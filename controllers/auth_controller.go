package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tarekelbanna92/rental-egypt/config"
	"github.com/tarekelbanna92/rental-egypt/services"
	"github.com/tarekelbanna92/rental-egypt/utils"
)

type AuthController struct {
	UserSvc *services.UserService
	Cfg     *config.AppConfig
}

func NewAuthController(svc *services.UserService, cfg *config.AppConfig) *AuthController {
	return &AuthController{UserSvc: svc, Cfg: cfg}
}

type SignupPayload struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=HOST GUEST"`
}

type LoginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Signup(c *gin.Context) {
	var payload SignupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ac.UserSvc.CreateUser(services.SignupInput{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
		Role:     payload.Role,
	})
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	token, err := utils.GenerateToken(ac.Cfg.JWTSecret, user.ID, user.Profile.Role, ac.Cfg.TokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"user": user, "token": token})
}

func (ac *AuthController) Login(c *gin.Context) {
	var payload LoginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ac.UserSvc.Authenticate(payload.Username, payload.Password)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	token, err := utils.GenerateToken(ac.Cfg.JWTSecret, user.ID, user.Profile.Role, ac.Cfg.TokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"user": user, "token": token})
}
