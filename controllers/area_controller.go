package controllers

import (
	"errors"
	"net/http"

	"github.com/BlasTJSN/WebDesign-ihome/services"
	"github.com/BlasTJSN/WebDesign-ihome/utils"

	"github.com/gin-gonic/gin"
)

// AreaController maneja los endpoints HTTP de zonas
type AreaController struct {
	service services.AreaService
}

// NewAreaController crea una nueva instancia del controlador
func NewAreaController(service services.AreaService) *AreaController {
	return &AreaController{service: service}
}

// GetAreas maneja GET /areas
// La lista viene del caché cuando hay hit; el servicio se encarga de todo,
// acá solo se arma el sobre
func (ctrl *AreaController) GetAreas(c *gin.Context) {
	data, err := ctrl.service.GetAreas()
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoData):
			c.JSON(http.StatusOK, utils.Error(utils.RetNoData, "no area data"))
		case errors.Is(err, services.ErrDatabase):
			c.JSON(http.StatusOK, utils.Error(utils.RetDBErr, "error querying area data"))
		default:
			c.JSON(http.StatusOK, utils.Error(utils.RetServerErr, "internal error"))
		}
		return
	}

	// data es json.RawMessage: el encoder lo incrusta tal cual,
	// sin volver a serializar el payload cacheado
	c.JSON(http.StatusOK, utils.OK(data))
}
