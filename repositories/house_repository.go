package repositories

import (
	"github.com/BlasTJSN/WebDesign-ihome/domain"

	"gorm.io/gorm"
)

// HouseRepository define la interfaz del repositorio de casas
// Por ahora el alcance es solo creación
type HouseRepository interface {
	Create(house *domain.House) error
}

type houseRepository struct {
	db *gorm.DB
}

// NewHouseRepository crea una nueva instancia del repositorio
func NewHouseRepository(db *gorm.DB) HouseRepository {
	return &houseRepository{db: db}
}

// Create inserta la casa y sus asociaciones de servicios en una sola transacción
// Si algo falla, gorm hace rollback completo: no queda ni la fila de la casa
// ni filas en la tabla intermedia
func (r *houseRepository) Create(house *domain.House) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(house).Error
	})
}
