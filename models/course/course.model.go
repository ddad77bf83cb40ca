package course

import "gorm.io/gorm"

// Course levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course represents a learning course offered on the site
type Course struct {
	gorm.Model
	Title       string  `json:"title"`
	Description string  `json:"description" gorm:"type:text"`
	Level       string  `json:"level" gorm:"default:'Beginner'"` // Beginner, Intermediate, Advanced
	Duration    string  `json:"duration"`                        // display label, e.g. "6 weeks"
	Price       float64 `json:"price" gorm:"default:0"`
	OrderIndex  int     `json:"order_index" gorm:"default:0"` // display order on the courses page
	IsPublished bool    `json:"is_published" gorm:"default:false"`
	IsDeleted   bool    `gorm:"default:false"`
}
