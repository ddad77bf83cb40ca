package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"not null"` // Who gave the review
	AuthorName string `json:"author_name"`
	Rating     int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1-5 rating
	Comment    string `json:"comment" gorm:"type:text;default:''"`
	IsApproved bool   `json:"is_approved" gorm:"default:false"` // only approved reviews are public
	IsDeleted  bool   `gorm:"default:false"`
}
