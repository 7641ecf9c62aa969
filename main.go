package main

import (
	"fmt"
	"log"
	"time"

	"github.com/BlasTJSN/WebDesign-ihome/config"
	"github.com/BlasTJSN/WebDesign-ihome/controllers"
	"github.com/BlasTJSN/WebDesign-ihome/domain"
	"github.com/BlasTJSN/WebDesign-ihome/middleware"
	"github.com/BlasTJSN/WebDesign-ihome/repositories"
	"github.com/BlasTJSN/WebDesign-ihome/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	// ============================================
	// 1. CONFIGURACIÓN - Leer variables de entorno
	// ============================================
	cfg := config.LoadConfig()

	log.Println("🔧 Configuración cargada:")
	log.Printf("   - DB Host: %s:%s", cfg.DBHost, cfg.DBPort)
	log.Printf("   - DB Name: %s", cfg.DBName)
	log.Printf("   - Memcached: %s", cfg.MemcachedHost)
	log.Printf("   - Area cache TTL: %ds", cfg.AreaCacheTTL)

	// ============================================
	// 2. CONECTAR A MYSQL
	// ============================================
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	log.Println("📡 Conectando a MySQL...")
	// TranslateError convierte el error 1062 de MySQL en gorm.ErrDuplicatedKey,
	// que el repositorio de usuarios usa para detectar celulares duplicados
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}
	log.Println("✅ Conexión a MySQL exitosa")

	// ============================================
	// 3. AUTO-MIGRAR LAS TABLAS
	// ============================================
	log.Println("🔄 Ejecutando migraciones...")
	err = db.AutoMigrate(
		&domain.User{},
		&domain.Area{},
		&domain.Facility{},
		&domain.House{},
		&domain.HouseImage{},
	)
	if err != nil {
		log.Fatal("❌ Failed to migrate database:", err)
	}
	log.Println("✅ Tablas creadas/actualizadas")

	// ============================================
	// 4. INICIALIZAR CAPAS
	// ============================================
	log.Println("🏗️  Inicializando capas...")

	// Repositories: acceso a datos y caché
	cacheRepo := repositories.NewCacheRepository(cfg.MemcachedHost)
	areaRepo := repositories.NewAreaRepository(db)
	facilityRepo := repositories.NewFacilityRepository(db)
	houseRepo := repositories.NewHouseRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Services: lógica de negocio
	areaService := services.NewAreaService(areaRepo, cacheRepo, time.Duration(cfg.AreaCacheTTL)*time.Second)
	houseService := services.NewHouseService(houseRepo, facilityRepo)
	userService := services.NewUserService(userRepo)

	// Controllers: manejan HTTP
	areaController := controllers.NewAreaController(areaService)
	houseController := controllers.NewHouseController(houseService)
	userController := controllers.NewUserController(userService)

	log.Println("✅ Capas inicializadas")

	// ============================================
	// 5. CONFIGURAR GIN Y RUTAS
	// ============================================
	router := gin.Default()

	// CORS - Permitir requests desde el frontend
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Rutas PÚBLICAS (sin autenticación)
	router.GET("/health", userController.HealthCheck)
	router.GET("/areas", areaController.GetAreas)
	router.POST("/users", userController.Register)
	router.POST("/users/login", userController.Login)

	// Rutas PROTEGIDAS (requieren JWT)
	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/houses", houseController.CreateHouse)
	}

	log.Println("✅ Rutas configuradas:")
	log.Println("   - GET  /health")
	log.Println("   - GET  /areas")
	log.Println("   - POST /users (registro)")
	log.Println("   - POST /users/login")
	log.Println("   - POST /houses (auth)")

	// ============================================
	// 6. ARRANCAR EL SERVIDOR
	// ============================================
	log.Println("🚀 =======================================")
	log.Printf("🚀 ihome API corriendo en puerto %s", cfg.Port)
	log.Println("🚀 =======================================")

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Failed to start server:", err)
	}
}
