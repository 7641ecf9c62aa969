package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/BlasTJSN/WebDesign-ihome/domain"
	"github.com/BlasTJSN/WebDesign-ihome/dto"
	"github.com/BlasTJSN/WebDesign-ihome/repositories"
	"github.com/BlasTJSN/WebDesign-ihome/utils"
)

// UserService define la interfaz del servicio de usuarios
type UserService interface {
	Register(req dto.RegisterRequest) (*domain.User, error)
	Login(req dto.LoginRequest) (*dto.LoginResponse, error)
}

// userService es la implementación real del servicio
type userService struct {
	repo repositories.UserRepository
}

// NewUserService crea una nueva instancia del servicio
func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

// Register crea un nuevo usuario con el celular como identificador
func (s *userService) Register(req dto.RegisterRequest) (*domain.User, error) {
	// 1. Verificar que el celular no esté registrado
	existing, _ := s.repo.GetByMobile(req.Mobile)
	if existing != nil {
		return nil, ErrMobileExists
	}

	// 2. Hashear la contraseña
	// NUNCA guardamos contraseñas en texto plano
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return nil, fmt.Errorf("%w: hash password", ErrInvalidData)
	}

	name := req.Name
	if name == "" {
		// Como en el registro original, el nombre por defecto es el celular
		name = req.Mobile
	}

	user := &domain.User{
		Mobile:       req.Mobile,
		Name:         name,
		PasswordHash: hashed,
	}

	// 3. Guardar en la base de datos
	// Un registro concurrente con el mismo celular pasa el chequeo del
	// paso 1 y choca con el índice único: también es celular duplicado
	if err := s.repo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEntry) {
			return nil, ErrMobileExists
		}
		log.Printf("Error saving user: %v", err)
		return nil, fmt.Errorf("%w: save user", ErrDatabase)
	}

	return user, nil
}

// Login autentica un usuario y genera un token JWT
func (s *userService) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	// 1. Buscar el usuario por celular
	// Por seguridad no decimos si el celular existe o no
	user, err := s.repo.GetByMobile(req.Mobile)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Verificar que la contraseña sea correcta
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// 3. Generar el token JWT que después valida el middleware
	token, err := utils.GenerateToken(user.ID, user.Mobile)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return nil, fmt.Errorf("%w: generate token", ErrInvalidData)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  *user,
	}, nil
}
