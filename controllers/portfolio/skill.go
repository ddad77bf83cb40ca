package controllers

import (
	"folio/database"
	"folio/middleware"
	"folio/models"

	"github.com/gofiber/fiber/v2"
)

// GetSkills lists skills grouped for the skills section
func GetSkills(c *fiber.Ctx) error {
	var skills []models.Skill
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("category asc, order_index asc").
		Find(&skills).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch skills!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skills fetched successfully!", fiber.Map{
		"skills": skills,
	})
}

// AdminCreateSkill adds a skill entry
func AdminCreateSkill(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSkill").(*struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Level    int    `json:"level"`
		IconURL  string `json:"icon_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var maxOrder int
	database.Database.Db.Model(&models.Skill{}).Where("is_deleted = ?", false).Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)

	skill := models.Skill{
		Name:       reqData.Name,
		Category:   reqData.Category,
		Level:      reqData.Level,
		IconURL:    reqData.IconURL,
		OrderIndex: maxOrder + 1,
	}

	if err := database.Database.Db.Create(&skill).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create skill!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Skill created successfully!", skill)
}

// AdminDeleteSkill soft deletes a skill entry
func AdminDeleteSkill(c *fiber.Ctx) error {
	skillID := c.Locals("skillID").(int)

	var skill models.Skill
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", skillID, false).First(&skill).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Skill not found!", nil)
	}

	if err := database.Database.Db.Model(&skill).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete skill!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill deleted successfully!", nil)
}
