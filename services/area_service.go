package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/BlasTJSN/WebDesign-ihome/domain"
	"github.com/BlasTJSN/WebDesign-ihome/dto"
	"github.com/BlasTJSN/WebDesign-ihome/repositories"
)

// AreaCacheKey es la clave fija bajo la que se guarda la lista de zonas
const AreaCacheKey = "area_info"

// AreaService define la interfaz del servicio de zonas
type AreaService interface {
	GetAreas() (json.RawMessage, error)
}

// areaService implementa el patrón cache-aside sobre el repositorio:
// caché -> base -> repoblar caché
type areaService struct {
	repo  repositories.AreaRepository
	cache repositories.CacheRepository
	ttl   time.Duration
}

// NewAreaService crea una nueva instancia del servicio
func NewAreaService(repo repositories.AreaRepository, cache repositories.CacheRepository, ttl time.Duration) AreaService {
	return &areaService{repo: repo, cache: cache, ttl: ttl}
}

// GetAreas devuelve la lista de zonas como JSON ya serializado
// Si el payload viene del caché se devuelve tal cual, sin re-serializar:
// cuando se guardó ya era JSON válido
func (s *areaService) GetAreas() (json.RawMessage, error) {
	// 1. Intentar leer del caché
	// Cualquier error del caché ya fue colapsado a un miss por el repositorio
	if cached, ok := s.cache.Get(AreaCacheKey); ok && len(cached) > 0 {
		return json.RawMessage(cached), nil
	}

	// 2. Miss: consultar la base autoritativa
	areas, err := s.repo.GetAll()
	if err != nil {
		log.Printf("Error querying areas: %v", err)
		return nil, fmt.Errorf("%w: query areas", ErrDatabase)
	}

	// 3. Sin resultados no es un error, pero se distingue del éxito con datos
	if len(areas) == 0 {
		return nil, ErrNoData
	}

	// 4. Serializar una sola vez
	payload, err := json.Marshal(toAreaInfoList(areas))
	if err != nil {
		log.Printf("Error marshaling areas: %v", err)
		return nil, err
	}

	// 5. Repoblar el caché best-effort: si falla, se loguea adentro y
	// la respuesta sale igual
	s.cache.Set(AreaCacheKey, payload, s.ttl)

	// 6. Devolver el JSON recién calculado
	return json.RawMessage(payload), nil
}

func toAreaInfoList(areas []domain.Area) []dto.AreaInfo {
	list := make([]dto.AreaInfo, 0, len(areas))
	for _, area := range areas {
		list = append(list, dto.AreaInfo{AreaID: area.ID, Name: area.Name})
	}
	return list
}
