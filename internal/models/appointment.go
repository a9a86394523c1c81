package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetID uint `gorm:"not null;index" json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pet"`

	OwnerID uint `gorm:"not null;index" json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Service     string    `gorm:"size:120;not null" json:"service"`
	ScheduledAt time.Time `gorm:"not null" json:"scheduled_at"`
	Notes       string    `gorm:"type:text" json:"notes"`

	Status string `gorm:"size:30;default:'Scheduled'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
