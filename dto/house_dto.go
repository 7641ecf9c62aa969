package dto

// AreaInfo es la forma serializada de una zona en la respuesta de GET /areas
// Esta es exactamente la estructura que se guarda en caché
type AreaInfo struct {
	AreaID uint   `json:"area_id"`
	Name   string `json:"name"`
}

// CreateHouseRequest representa el request para publicar una casa nueva
// Todos los campos son obligatorios salvo facility
// Price y Deposit llegan como strings decimales en la unidad mayor ("12.50")
// y se convierten a centavos una sola vez, en el servicio
type CreateHouseRequest struct {
	Title     string `json:"title" binding:"required"`
	AreaID    uint   `json:"area_id" binding:"required"`
	Address   string `json:"address" binding:"required"`
	Price     string `json:"price" binding:"required"`
	RoomCount int    `json:"room_count" binding:"required"`
	Acreage   int    `json:"acreage" binding:"required"`
	Unit      string `json:"unit" binding:"required"`
	Capacity  int    `json:"capacity" binding:"required"`
	Beds      string `json:"beds" binding:"required"`
	Deposit   string `json:"deposit" binding:"required"`
	MinDays   int    `json:"min_days" binding:"required"`
	MaxDays   int    `json:"max_days" binding:"required"`

	// IDs de servicios del catálogo; los desconocidos se descartan en silencio
	Facility []uint `json:"facility,omitempty"`
}

// CreateHouseResponse es el payload de éxito de POST /houses
// El house_id lo usa el frontend para subir las imágenes después
type CreateHouseResponse struct {
	HouseID uint `json:"house_id"`
}
