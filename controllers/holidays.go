package controllers

import (
	"attendance_go/database"
	"attendance_go/middleware"
	"attendance_go/models"
	"attendance_go/utils"

	"github.com/gofiber/fiber/v2"
)

type HolidayController struct{}

// GetHolidays returns all holiday dates ordered ascending
func (hc *HolidayController) GetHolidays(c *fiber.Ctx) error {
	var holidays []models.Holiday
	if err := database.DB.Order("date ASC").Find(&holidays).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch holidays",
		})
	}

	dates := make([]string, 0, len(holidays))
	for _, h := range holidays {
		dates = append(dates, h.Date)
	}

	return c.JSON(fiber.Map{"holidays": dates})
}

// AddHoliday declares a date a holiday
func (hc *HolidayController) AddHoliday(c *fiber.Ctx) error {
	var req struct {
		Date string `json:"date" validate:"required"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Date is required",
		})
	}
	if err := utils.ParseDate(req.Date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	var existing models.Holiday
	if err := database.DB.Where("date = ?", req.Date).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Holiday on '" + req.Date + "' already exists",
		})
	}

	holiday := models.Holiday{Date: req.Date}
	if err := database.DB.Create(&holiday).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Holiday on '" + req.Date + "' already exists",
		})
	}

	middleware.LogActivity(c, "CREATE", "holidays", holiday.ID, fiber.Map{"date": holiday.Date})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Holiday on '" + holiday.Date + "' added",
	})
}

// DeleteHoliday removes a holiday by date
func (hc *HolidayController) DeleteHoliday(c *fiber.Ctx) error {
	date := c.Params("date")
	if err := utils.ParseDate(date); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	result := database.DB.Unscoped().Where("date = ?", date).Delete(&models.Holiday{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete holiday",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Holiday not found",
		})
	}

	middleware.LogActivity(c, "DELETE", "holidays", 0, fiber.Map{"date": date})

	return c.JSON(fiber.Map{"message": "Holiday deleted"})
}
