package portfolioRoutes

import (
	controllers "folio/controllers/portfolio"
	"folio/middleware"
	validators "folio/validators/portfolio"

	"github.com/gofiber/fiber/v2"
)

// SetupPortfolioRoutes sets up the portfolio content routes
func SetupPortfolioRoutes(app *fiber.App) {
	publicGroup := app.Group("/portfolio")

	publicGroup.Get("/projects", controllers.GetProjects)
	publicGroup.Get("/skills", controllers.GetSkills)
	publicGroup.Get("/reviews", controllers.GetReviews)
	publicGroup.Post("/contact", validators.Contact(), controllers.SubmitContactMessage)
	publicGroup.Post("/reviews", middleware.JWTMiddleware, validators.Review(), controllers.SubmitReview)

	adminGroup := app.Group("/admin/portfolio", middleware.JWTMiddleware, middleware.AdminMiddleware)

	adminGroup.Post("/projects", validators.Project(), controllers.AdminCreateProject)
	adminGroup.Delete("/projects/:id", validators.IDParam("id", "projectID"), controllers.AdminDeleteProject)
	adminGroup.Post("/skills", validators.Skill(), controllers.AdminCreateSkill)
	adminGroup.Delete("/skills/:id", validators.IDParam("id", "skillID"), controllers.AdminDeleteSkill)
	adminGroup.Put("/reviews/:id/approve", validators.IDParam("id", "reviewID"), controllers.AdminApproveReview)
	adminGroup.Delete("/reviews/:id", validators.IDParam("id", "reviewID"), controllers.AdminDeleteReview)
	adminGroup.Get("/messages", controllers.AdminListContactMessages)
	adminGroup.Put("/messages/:id/read", validators.IDParam("id", "messageID"), controllers.AdminMarkMessageRead)
}
