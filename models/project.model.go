package models

import "gorm.io/gorm"

// Project is one portfolio showcase entry
type Project struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"image_url"`
	LiveURL     string `json:"live_url"`
	RepoURL     string `json:"repo_url"`
	Tags        string `json:"tags"`                         // comma separated
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // display order on the page
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}
