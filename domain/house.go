package domain

import "time"

// Area representa una zona administrativa de la ciudad
// Es información de referencia, solo lectura desde este servicio
type Area struct {
	ID        uint      `gorm:"primaryKey" json:"area_id"`
	Name      string    `gorm:"type:varchar(32);not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName especifica el nombre de la tabla en MySQL
func (Area) TableName() string {
	return "ih_area_info"
}

// Facility representa un servicio/comodidad del catálogo fijo
// (wifi, estacionamiento, etc.) - no se crean desde esta API
type Facility struct {
	ID        uint      `gorm:"primaryKey" json:"facility_id"`
	Name      string    `gorm:"type:varchar(32);not null" json:"name"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Facility) TableName() string {
	return "ih_facility_info"
}

// House representa una publicación de casa en alquiler
// Price y Deposit se guardan como enteros en la unidad mínima de moneda
// (centavos) para evitar errores de redondeo con floats
type House struct {
	ID        uint   `gorm:"primaryKey" json:"house_id"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	AreaID    uint   `gorm:"not null;index" json:"area_id"`
	Title     string `gorm:"type:varchar(64);not null" json:"title"`
	Address   string `gorm:"type:varchar(512)" json:"address"`
	Price     int64  `gorm:"not null;default:0" json:"price"`
	RoomCount int    `gorm:"default:1" json:"room_count"`
	Acreage   int    `gorm:"default:0" json:"acreage"`
	Unit      string `gorm:"type:varchar(32)" json:"unit"`
	Capacity  int    `gorm:"default:1" json:"capacity"`
	Beds      string `gorm:"type:varchar(64)" json:"beds"`
	Deposit   int64  `gorm:"not null;default:0" json:"deposit"`
	MinDays   int    `gorm:"default:1" json:"min_days"`
	MaxDays   int    `gorm:"default:0" json:"max_days"` // 0 = sin límite

	// Relación muchos-a-muchos: la tabla intermedia ih_house_facility
	// solo guarda los pares (house_id, facility_id)
	Facilities []Facility `gorm:"many2many:ih_house_facility" json:"facilities,omitempty"`

	// Las imágenes se suben en un paso posterior usando el house_id devuelto
	Images []HouseImage `json:"images,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (House) TableName() string {
	return "ih_house_info"
}

// HouseImage representa una imagen asociada a una casa
type HouseImage struct {
	ID        uint      `gorm:"primaryKey" json:"image_id"`
	HouseID   uint      `gorm:"not null;index" json:"house_id"`
	URL       string    `gorm:"type:varchar(256);not null" json:"url"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (HouseImage) TableName() string {
	return "ih_house_image"
}
