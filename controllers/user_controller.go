package controllers

import (
	"errors"
	"net/http"

	"github.com/BlasTJSN/WebDesign-ihome/dto"
	"github.com/BlasTJSN/WebDesign-ihome/services"
	"github.com/BlasTJSN/WebDesign-ihome/utils"

	"github.com/gin-gonic/gin"
)

// UserController maneja los endpoints HTTP de usuarios
type UserController struct {
	service services.UserService
}

// NewUserController crea una nueva instancia del controlador
func NewUserController(service services.UserService) *UserController {
	return &UserController{service: service}
}

// Register maneja POST /users
func (ctrl *UserController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, utils.Error(utils.RetParamErr, "missing or invalid parameters"))
		return
	}

	user, err := ctrl.service.Register(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMobileExists):
			c.JSON(http.StatusOK, utils.Error(utils.RetDataErr, "mobile already registered"))
		case errors.Is(err, services.ErrDatabase):
			c.JSON(http.StatusOK, utils.Error(utils.RetDBErr, "error saving user data"))
		default:
			c.JSON(http.StatusOK, utils.Error(utils.RetServerErr, "internal error"))
		}
		return
	}

	c.JSON(http.StatusOK, utils.OK(user))
}

// Login maneja POST /users/login
// El token devuelto es el que después exige el middleware de auth
func (ctrl *UserController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, utils.Error(utils.RetParamErr, "missing or invalid parameters"))
		return
	}

	response, err := ctrl.service.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, utils.Error(utils.RetSessionErr, "invalid credentials"))
			return
		}
		c.JSON(http.StatusOK, utils.Error(utils.RetServerErr, "internal error"))
		return
	}

	c.JSON(http.StatusOK, utils.OK(response))
}

// HealthCheck maneja GET /health
// Endpoint simple para verificar que el servicio está corriendo
func (ctrl *UserController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "ihome-api",
	})
}
