package course

import "time"

// ModuleProgress marks one module completed by one user. CourseID is
// denormalized so unenroll and percentage queries stay per-course. A progress
// row may outlive its module after catalog edits; such orphaned rows still
// count toward the raw completion percentage.
type ModuleProgress struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	UserID      uint      `json:"user_id" gorm:"uniqueIndex:idx_user_module;not null"`
	ModuleID    uint      `json:"module_id" gorm:"uniqueIndex:idx_user_module;not null"`
	CourseID    uint      `json:"course_id" gorm:"index;not null"`
	CompletedAt time.Time `json:"completed_at" gorm:"autoCreateTime"`
}
