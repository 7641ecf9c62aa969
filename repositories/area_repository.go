package repositories

import (
	"github.com/BlasTJSN/WebDesign-ihome/domain"

	"gorm.io/gorm"
)

// AreaRepository define la interfaz del repositorio de zonas
// Las zonas son datos de referencia: solo lectura
type AreaRepository interface {
	GetAll() ([]domain.Area, error)
}

// areaRepository es la implementación real del repositorio
type areaRepository struct {
	db *gorm.DB
}

// NewAreaRepository crea una nueva instancia del repositorio
func NewAreaRepository(db *gorm.DB) AreaRepository {
	return &areaRepository{db: db}
}

// GetAll obtiene todas las zonas ordenadas por ID
// El orden estable hace que el payload cacheado sea reproducible
func (r *areaRepository) GetAll() ([]domain.Area, error) {
	var areas []domain.Area
	err := r.db.Order("id").Find(&areas).Error
	return areas, err
}
