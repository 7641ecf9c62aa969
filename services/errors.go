package services

import "errors"

// Errores centinela de la capa de servicios
// Los controllers los mapean a códigos errno con errors.Is
var (
	// ErrDatabase: la base no respondió o la escritura falló; el cliente
	// puede reintentar la request completa (quedó todo con rollback)
	ErrDatabase = errors.New("database error")

	// ErrNoData: la consulta fue válida pero no hay resultados
	ErrNoData = errors.New("no data found")

	// ErrInvalidData: el dato llegó pero es inválido (ej: precio no numérico)
	ErrInvalidData = errors.New("invalid data")

	// ErrMobileExists: ya hay un usuario registrado con ese celular
	ErrMobileExists = errors.New("mobile already registered")

	// ErrInvalidCredentials: celular o contraseña incorrectos
	ErrInvalidCredentials = errors.New("invalid credentials")
)
