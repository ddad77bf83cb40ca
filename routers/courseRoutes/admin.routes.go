package courseRoutes

import (
	controllers "folio/controllers/course"
	"folio/middleware"
	validators "folio/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up catalog management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminMiddleware)

	adminGroup.Get("/", controllers.AdminListCourses)
	adminGroup.Post("/", validators.CreateCourse(), controllers.AdminCreateCourse)
	adminGroup.Put("/:id", validators.UpdateCourse(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.DeleteCourse(), controllers.AdminDeleteCourse)

	adminGroup.Post("/:id/module", validators.CreateModule(), controllers.AdminCreateModule)
	adminGroup.Put("/:id/module/:moduleId", validators.UpdateModule(), controllers.AdminUpdateModule)
	adminGroup.Delete("/:id/module/:moduleId", validators.DeleteModule(), controllers.AdminDeleteModule)
	adminGroup.Put("/:id/modules/reorder", validators.ReorderModules(), controllers.AdminReorderModules)
}
