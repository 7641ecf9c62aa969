package middleware

import (
	"net/http"
	"strings"

	"github.com/BlasTJSN/WebDesign-ihome/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware valida el JWT token en cada request
// Si el token es válido, guarda el user_id en el contexto y permite continuar
// Si no, devuelve errno de sesión y corta la request antes del handler
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Obtener el header "Authorization"
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, utils.Error(utils.RetSessionErr, "authorization header required"))
			c.Abort() // Detiene la ejecución
			return
		}

		// Formato esperado: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, utils.Error(utils.RetSessionErr, "invalid authorization header format"))
			c.Abort()
			return
		}

		// Validar el token
		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, utils.Error(utils.RetSessionErr, "invalid or expired token"))
			c.Abort()
			return
		}

		// Guardar la identidad en el contexto
		// Así los handlers saben quién hizo la request sin tocar auth
		c.Set("user_id", claims.UserID)

		c.Next() // Continúa con el endpoint
	}
}
