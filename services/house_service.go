package services

import (
	"fmt"
	"log"
	"math"
	"strconv"

	"github.com/BlasTJSN/WebDesign-ihome/domain"
	"github.com/BlasTJSN/WebDesign-ihome/dto"
	"github.com/BlasTJSN/WebDesign-ihome/repositories"
)

// HouseService define la interfaz del servicio de casas
type HouseService interface {
	CreateHouse(userID uint, req dto.CreateHouseRequest) (uint, error)
}

// houseService es la implementación real del servicio
type houseService struct {
	houseRepo    repositories.HouseRepository
	facilityRepo repositories.FacilityRepository
}

// NewHouseService crea una nueva instancia del servicio
func NewHouseService(houseRepo repositories.HouseRepository, facilityRepo repositories.FacilityRepository) HouseService {
	return &houseService{houseRepo: houseRepo, facilityRepo: facilityRepo}
}

// CreateHouse publica una casa nueva a nombre de userID y devuelve su ID
// El ID generado lo usa el frontend para subir las imágenes después
func (s *houseService) CreateHouse(userID uint, req dto.CreateHouseRequest) (uint, error) {
	// 1. Convertir precio y depósito de unidad mayor a centavos
	// La conversión pasa UNA sola vez, acá en el borde; adentro todo es entero
	price, err := parseAmount(req.Price)
	if err != nil {
		log.Printf("Invalid price %q: %v", req.Price, err)
		return 0, fmt.Errorf("%w: price", ErrInvalidData)
	}
	deposit, err := parseAmount(req.Deposit)
	if err != nil {
		log.Printf("Invalid deposit %q: %v", req.Deposit, err)
		return 0, fmt.Errorf("%w: deposit", ErrInvalidData)
	}

	// 2. Construir el objeto House en memoria
	house := &domain.House{
		UserID:    userID,
		AreaID:    req.AreaID,
		Title:     req.Title,
		Address:   req.Address,
		Price:     price,
		RoomCount: req.RoomCount,
		Acreage:   req.Acreage,
		Unit:      req.Unit,
		Capacity:  req.Capacity,
		Beds:      req.Beds,
		Deposit:   deposit,
		MinDays:   req.MinDays,
		MaxDays:   req.MaxDays,
	}

	// 3. Si mandaron servicios, filtrarlos contra el catálogo
	// Solo se asocian los IDs que existen; los desconocidos se descartan
	// en silencio, no son un error
	if len(req.Facility) > 0 {
		facilities, err := s.facilityRepo.GetByIDs(req.Facility)
		if err != nil {
			log.Printf("Error querying facilities: %v", err)
			return 0, fmt.Errorf("%w: query facilities", ErrDatabase)
		}
		house.Facilities = facilities
	}

	// 4. Persistir casa + asociaciones en una transacción
	// Si falla, el repositorio hace rollback completo
	if err := s.houseRepo.Create(house); err != nil {
		log.Printf("Error saving house: %v", err)
		return 0, fmt.Errorf("%w: save house", ErrDatabase)
	}

	return house.ID, nil
}

// parseAmount convierte un monto decimal en unidad mayor ("12.50")
// a entero en centavos (1250)
// math.Round evita que el ruido binario del float (0.29*100 = 28.999...)
// corra el valor un centavo
func parseAmount(value string) (int64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	cents := math.Round(f * 100)
	// ParseFloat acepta "NaN", "Inf" y números enormes; convertirlos a
	// int64 da basura, así que se rechazan antes
	if math.IsNaN(cents) || cents >= math.MaxInt64 || cents <= math.MinInt64 {
		return 0, fmt.Errorf("amount %q out of range", value)
	}
	return int64(cents), nil
}
