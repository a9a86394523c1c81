package models

import "time"

type Pet struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `gorm:"not null;index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name           string `gorm:"size:80;not null" json:"name"`
	Breed          string `gorm:"size:80" json:"breed"`
	Age            int    `json:"age"`
	MedicalHistory string `gorm:"type:text" json:"medical_history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
