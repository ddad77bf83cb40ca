package course

import "time"

// Enrollment ties a user to a course. Rows are hard-deleted on unenroll so the
// composite unique index allows re-enrolling later; gorm.Model's soft delete
// would keep the old row around and block the insert.
type Enrollment struct {
	ID          uint       `json:"id" gorm:"primarykey"`
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID    uint       `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	EnrolledAt  time.Time  `json:"enrolled_at" gorm:"autoCreateTime"`
	CompletedAt *time.Time `json:"completed_at"` // set once, when every module has a progress row

	Course Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
