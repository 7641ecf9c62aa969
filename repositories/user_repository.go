package repositories

import (
	"errors"

	"github.com/BlasTJSN/WebDesign-ihome/domain"

	"gorm.io/gorm"
)

// ErrDuplicateEntry indica que la inserción chocó con un índice único
// (requiere TranslateError en la config de gorm para que el driver
// de MySQL traduzca el error 1062)
var ErrDuplicateEntry = errors.New("duplicate entry")

// UserRepository define la interfaz del repositorio de usuarios
type UserRepository interface {
	Create(user *domain.User) error
	GetByID(id uint) (*domain.User, error)
	GetByMobile(mobile string) (*domain.User, error)
}

// userRepository es la implementación real del repositorio
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository crea una nueva instancia del repositorio
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserta un nuevo usuario en la base de datos
// Dos registros concurrentes con el mismo celular pasan el chequeo previo
// del servicio; el índice único es quien corta, y acá se traduce
func (r *userRepository) Create(user *domain.User) error {
	err := r.db.Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateEntry
	}
	return err
}

// GetByID busca un usuario por su ID
func (r *userRepository) GetByID(id uint) (*domain.User, error) {
	var user domain.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// GetByMobile busca un usuario por su número de celular
// Se usa en el login y para detectar registros duplicados
func (r *userRepository) GetByMobile(mobile string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("mobile = ?", mobile).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &user, nil
}
