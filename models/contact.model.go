package models

import "gorm.io/gorm"

// ContactMessage is a message sent through the contact form
type ContactMessage struct {
	gorm.Model
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"not null"`
	Subject   string `json:"subject"`
	Body      string `json:"body" gorm:"type:text;not null"`
	IsRead    bool   `json:"is_read" gorm:"default:false"`
	IsDeleted bool   `gorm:"default:false"`
}
