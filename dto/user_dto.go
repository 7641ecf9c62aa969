package dto

import "github.com/BlasTJSN/WebDesign-ihome/domain"

// RegisterRequest representa el request para registrar un usuario
type RegisterRequest struct {
	Mobile   string `json:"mobile" binding:"required,len=11"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest representa el request para login
type LoginRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse representa la respuesta del login
// Devuelve el token JWT y los datos del usuario
type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}
