package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config contiene la configuración de la aplicación
type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	MemcachedHost string
	Port          string
	AreaCacheTTL  int // segundos
}

// LoadConfig carga la configuración desde variables de entorno con valores por defecto
// Si existe un archivo .env, se carga primero
func LoadConfig() *Config {
	// .env es opcional, en producción las variables vienen del entorno
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "3306"),
		DBUser:        getEnv("DB_USER", "ihome_user"),
		DBPassword:    getEnv("DB_PASSWORD", "ihome_password"),
		DBName:        getEnv("DB_NAME", "ihome_db"),
		MemcachedHost: getEnv("MEMCACHED_HOST", "localhost:11211"),
		Port:          getEnv("SERVER_PORT", "8080"),
		AreaCacheTTL:  getEnvInt("AREA_CACHE_TTL", 7200),
	}
	return cfg
}

// getEnv obtiene una variable de entorno o retorna un valor por defecto
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt obtiene una variable de entorno numérica o retorna un valor por defecto
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
