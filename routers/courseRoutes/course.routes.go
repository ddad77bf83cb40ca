package courseRoutes

import (
	controllers "folio/controllers/course"
	"folio/middleware"
	validators "folio/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Catalog reads; details include enrollment state when a token is present
	userGroup.Get("/list", controllers.GetAllCourses)
	userGroup.Get("/:id", middleware.OptionalJWTMiddleware, validators.GetCourseDetail(), controllers.GetCourseDetails)

	// Enrollment lifecycle; status is soft for anonymous callers
	userGroup.Get("/:id/enrollment", middleware.OptionalJWTMiddleware, validators.EnrollCourse(), controllers.GetEnrollmentStatus)
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)
	userGroup.Delete("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.UnenrollFromCourse)

	// Progress tracking
	userGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.GetCourseProgress(), controllers.GetUserProgress)
	userGroup.Post("/:course_id/module/:module_id/complete", middleware.JWTMiddleware, validators.CompleteModule(), controllers.CompleteModule)
	userGroup.Delete("/:course_id/module/:module_id/complete", middleware.JWTMiddleware, validators.CompleteModule(), controllers.UncompleteModule)

	// User enrollments and certificates
	userEnrollGroup := app.Group("/user")
	userEnrollGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetUserEnrollmentsList)
	userEnrollGroup.Get("/certificates", middleware.JWTMiddleware, controllers.GetUserCertificates)
}
