package services

import (
	"errors"
	"testing"

	"github.com/BlasTJSN/WebDesign-ihome/domain"
	"github.com/BlasTJSN/WebDesign-ihome/dto"
	"github.com/BlasTJSN/WebDesign-ihome/repositories"
)

// ============================================
// MOCK del repositorio para los tests
// ============================================

type mockUserRepository struct {
	users map[uint]*domain.User
	// duplicateOnCreate simula el registro concurrente: el chequeo previo
	// no vio a nadie pero el índice único rechaza el insert
	duplicateOnCreate bool
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[uint]*domain.User)}
}

func (m *mockUserRepository) Create(user *domain.User) error {
	if m.duplicateOnCreate {
		return repositories.ErrDuplicateEntry
	}
	// Simular auto-increment del ID
	user.ID = uint(len(m.users) + 1)
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepository) GetByID(id uint) (*domain.User, error) {
	user, exists := m.users[id]
	if !exists {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (m *mockUserRepository) GetByMobile(mobile string) (*domain.User, error) {
	for _, user := range m.users {
		if user.Mobile == mobile {
			return user, nil
		}
	}
	return nil, errors.New("user not found")
}

// ============================================
// TESTS
// ============================================

// Test: registrar usuario exitosamente
func TestRegister_Success(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo)

	req := dto.RegisterRequest{
		Mobile:   "15912345678",
		Password: "password123",
	}

	user, err := service.Register(req)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user == nil {
		t.Fatal("Expected user, got nil")
	}

	if user.Mobile != req.Mobile {
		t.Errorf("Expected mobile %s, got %s", req.Mobile, user.Mobile)
	}

	// Sin nombre explícito, el nombre por defecto es el celular
	if user.Name != req.Mobile {
		t.Errorf("Expected default name %s, got %s", req.Mobile, user.Name)
	}

	// Verificar que la contraseña fue hasheada (no es la original)
	if user.PasswordHash == req.Password {
		t.Error("Password should be hashed, not plain text")
	}
}

// Test: error al registrar con celular duplicado
func TestRegister_DuplicateMobile(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo)

	req := dto.RegisterRequest{
		Mobile:   "15912345678",
		Password: "password123",
	}
	service.Register(req)

	user, err := service.Register(req)

	if !errors.Is(err, ErrMobileExists) {
		t.Errorf("Expected ErrMobileExists, got %v", err)
	}

	if user != nil {
		t.Error("Expected nil user, got user")
	}
}

// Test: dos registros concurrentes con el mismo celular - el que pierde
// la carrera choca con el índice único y también recibe celular duplicado,
// no un error de base
func TestRegister_ConcurrentDuplicateMobile(t *testing.T) {
	repo := newMockUserRepository()
	repo.duplicateOnCreate = true
	service := NewUserService(repo)

	user, err := service.Register(dto.RegisterRequest{
		Mobile:   "15912345678",
		Password: "password123",
	})

	if !errors.Is(err, ErrMobileExists) {
		t.Errorf("Expected ErrMobileExists, got %v", err)
	}

	if errors.Is(err, ErrDatabase) {
		t.Error("Unique-index duplicate should not surface as database error")
	}

	if user != nil {
		t.Error("Expected nil user, got user")
	}
}

// Test: login exitoso devuelve token
func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo)

	service.Register(dto.RegisterRequest{
		Mobile:   "15912345678",
		Password: "password123",
	})

	response, err := service.Login(dto.LoginRequest{
		Mobile:   "15912345678",
		Password: "password123",
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if response == nil {
		t.Fatal("Expected login response, got nil")
	}

	if response.Token == "" {
		t.Error("Expected JWT token, got empty string")
	}

	if response.User.Mobile != "15912345678" {
		t.Errorf("Expected mobile 15912345678, got %s", response.User.Mobile)
	}
}

// Test: login fallido - usuario no existe
func TestLogin_UserNotFound(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo)

	response, err := service.Login(dto.LoginRequest{
		Mobile:   "15900000000",
		Password: "password123",
	})

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}

	if response != nil {
		t.Error("Expected nil response, got response")
	}
}

// Test: login fallido - contraseña incorrecta
func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepository()
	service := NewUserService(repo)

	service.Register(dto.RegisterRequest{
		Mobile:   "15912345678",
		Password: "password123",
	})

	response, err := service.Login(dto.LoginRequest{
		Mobile:   "15912345678",
		Password: "wrongpassword",
	})

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}

	if response != nil {
		t.Error("Expected nil response, got response")
	}
}
