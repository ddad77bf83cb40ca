package controllers

import (
	"folio/database"
	"folio/middleware"
	"folio/models"

	"github.com/gofiber/fiber/v2"
)

// GetReviews lists approved reviews
func GetReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	if err := database.Database.Db.
		Where("is_deleted = ? AND is_approved = ?", false, true).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fiber.Map{
		"reviews": reviews,
	})
}

// SubmitReview lets a signed-in user leave a review, pending approval
func SubmitReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	review := models.Review{
		UserID:     userID,
		AuthorName: user.Name,
		Rating:     reqData.Rating,
		Comment:    reqData.Comment,
	}

	if err := database.Database.Db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted for approval!", review)
}

// AdminApproveReview approves a pending review
func AdminApproveReview(c *fiber.Ctx) error {
	reviewID := c.Locals("reviewID").(int)

	var review models.Review
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reviewID, false).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if err := database.Database.Db.Model(&review).Update("is_approved", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to approve review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review approved successfully!", review)
}

// AdminDeleteReview soft deletes a review
func AdminDeleteReview(c *fiber.Ctx) error {
	reviewID := c.Locals("reviewID").(int)

	var review models.Review
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reviewID, false).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if err := database.Database.Db.Model(&review).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully!", nil)
}
