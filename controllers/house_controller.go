package controllers

import (
	"errors"
	"net/http"

	"github.com/BlasTJSN/WebDesign-ihome/dto"
	"github.com/BlasTJSN/WebDesign-ihome/services"
	"github.com/BlasTJSN/WebDesign-ihome/utils"

	"github.com/gin-gonic/gin"
)

// HouseController maneja los endpoints HTTP de casas
type HouseController struct {
	service services.HouseService
}

// NewHouseController crea una nueva instancia del controlador
func NewHouseController(service services.HouseService) *HouseController {
	return &HouseController{service: service}
}

// CreateHouse maneja POST /houses
// El middleware de auth ya corrió: el user_id está en el contexto
func (ctrl *HouseController) CreateHouse(c *gin.Context) {
	// 1. Identidad del dueño, inyectada por el middleware
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, utils.Error(utils.RetSessionErr, "user identity missing"))
		return
	}

	// 2. Leer el JSON del body y validar los campos obligatorios
	// Cualquier campo faltante o body ilegible corta acá, sin efectos
	var req dto.CreateHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, utils.Error(utils.RetParamErr, "missing or invalid parameters"))
		return
	}

	// 3. Llamar al servicio para crear la casa
	houseID, err := ctrl.service.CreateHouse(userID.(uint), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidData):
			c.JSON(http.StatusOK, utils.Error(utils.RetDataErr, "invalid price data"))
		case errors.Is(err, services.ErrDatabase):
			c.JSON(http.StatusOK, utils.Error(utils.RetDBErr, "error saving house data"))
		default:
			c.JSON(http.StatusOK, utils.Error(utils.RetServerErr, "internal error"))
		}
		return
	}

	// 4. Devolver el house_id para que el frontend suba las imágenes
	c.JSON(http.StatusOK, utils.OK(dto.CreateHouseResponse{HouseID: houseID}))
}
