package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag is a category label that posts can be filed under. Names are not
// required to be unique; only active tags surface in category listings.
type Tag struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	GroupName string         `gorm:"not null" json:"group"`
	Color     string         `gorm:"not null" json:"color"`
	Active    bool           `gorm:"default:true" json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TagRef is the compact tag shape embedded in feed rows.
type TagRef struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
