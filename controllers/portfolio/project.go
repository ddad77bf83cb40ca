package controllers

import (
	"folio/database"
	"folio/middleware"
	"folio/models"

	"github.com/gofiber/fiber/v2"
)

// GetProjects lists published projects in display order
func GetProjects(c *fiber.Ctx) error {
	var projects []models.Project
	if err := database.Database.Db.
		Where("is_deleted = ? AND is_published = ?", false, true).
		Order("order_index asc").
		Find(&projects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch projects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projects fetched successfully!", fiber.Map{
		"projects": projects,
	})
}

// AdminCreateProject creates a portfolio project
func AdminCreateProject(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedProject").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		LiveURL     string `json:"live_url"`
		RepoURL     string `json:"repo_url"`
		Tags        string `json:"tags"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var maxOrder int
	database.Database.Db.Model(&models.Project{}).Where("is_deleted = ?", false).Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	project := models.Project{
		Title:       reqData.Title,
		Description: reqData.Description,
		ImageURL:    reqData.ImageURL,
		LiveURL:     reqData.LiveURL,
		RepoURL:     reqData.RepoURL,
		Tags:        reqData.Tags,
		OrderIndex:  maxOrder + 1,
		IsPublished: true,
	}

	if err := database.Database.Db.Create(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Project created successfully!", project)
}

// AdminDeleteProject soft deletes a project
func AdminDeleteProject(c *fiber.Ctx) error {
	projectID := c.Locals("projectID").(int)

	var project models.Project
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", projectID, false).First(&project).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Project not found!", nil)
	}

	if err := database.Database.Db.Model(&project).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete project!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Project deleted successfully!", nil)
}
