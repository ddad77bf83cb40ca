package models

import "gorm.io/gorm"

// Skill is one entry in the skills section
type Skill struct {
	gorm.Model
	Name       string `json:"name" gorm:"not null"`
	Category   string `json:"category" gorm:"default:'general'"` // frontend, backend, tools, general
	Level      int    `json:"level" gorm:"default:0"`            // 0-100 proficiency bar
	IconURL    string `json:"icon_url"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `gorm:"default:false"`
}
