package repositories

import (
	"github.com/BlasTJSN/WebDesign-ihome/domain"

	"gorm.io/gorm"
)

// FacilityRepository define la interfaz del repositorio de servicios/comodidades
// El catálogo es fijo: solo se consulta, nunca se crea desde esta API
type FacilityRepository interface {
	GetByIDs(ids []uint) ([]domain.Facility, error)
}

type facilityRepository struct {
	db *gorm.DB
}

// NewFacilityRepository crea una nueva instancia del repositorio
func NewFacilityRepository(db *gorm.DB) FacilityRepository {
	return &facilityRepository{db: db}
}

// GetByIDs filtra el catálogo por los IDs pedidos
// Los IDs que no existen simplemente no aparecen en el resultado
func (r *facilityRepository) GetByIDs(ids []uint) ([]domain.Facility, error) {
	var facilities []domain.Facility
	err := r.db.Where("id IN ?", ids).Find(&facilities).Error
	return facilities, err
}
