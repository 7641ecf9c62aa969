package domain

import "time"

// User representa un usuario (dueño de casas) en el sistema
type User struct {
	ID           uint      `gorm:"primaryKey" json:"user_id"`
	Mobile       string    `gorm:"type:varchar(11);unique;not null" json:"mobile"`
	Name         string    `gorm:"type:varchar(32)" json:"name"`
	PasswordHash string    `gorm:"type:varchar(128);not null" json:"-"` // El "-" oculta el hash en JSON
	AvatarURL    string    `gorm:"type:varchar(128)" json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Houses []House `json:"-"`
}

// TableName especifica el nombre de la tabla en MySQL
func (User) TableName() string {
	return "ih_user_profile"
}
