package controllers

import (
	"folio/database"
	"folio/middleware"
	"folio/models"
	"folio/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitContactMessage stores a contact-form message and notifies the owner
func SubmitContactMessage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Body    string `json:"body"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	message := models.ContactMessage{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Subject: reqData.Subject,
		Body:    reqData.Body,
	}

	if err := database.Database.Db.Create(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send message!", nil)
	}

	utils.SendContactNotification(message.Name, message.Email, message.Subject, message.Body)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message sent successfully!", fiber.Map{
		"id": message.ID,
	})
}

// AdminListContactMessages lists received contact messages, newest first
func AdminListContactMessages(c *fiber.Ctx) error {
	var messages []models.ContactMessage
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully!", fiber.Map{
		"messages": messages,
	})
}

// AdminMarkMessageRead flags a contact message as read
func AdminMarkMessageRead(c *fiber.Ctx) error {
	messageID := c.Locals("messageID").(int)

	var message models.ContactMessage
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", messageID, false).First(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Message not found!", nil)
	}

	if err := database.Database.Db.Model(&message).Update("is_read", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message marked as read!", message)
}
