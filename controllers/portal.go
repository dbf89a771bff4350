package controllers

import (
	"attendance_go/database"
	"attendance_go/middleware"
	"attendance_go/models"
	"attendance_go/utils"
	"fmt"
	"math"

	"github.com/gofiber/fiber/v2"
)

type PortalController struct{}

// MyAttendance returns the calling student's own history plus their overall
// present/absent totals and attendance percentage. Identity comes from the
// token, never from a query parameter.
func (pc *PortalController) MyAttendance(c *fiber.Ctx) error {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	var records []models.AttendanceRecord
	if err := database.DB.
		Where("student_user_id = ?", user.ID).
		Order("date DESC").
		Find(&records).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch attendance",
		})
	}

	entries := make([]utils.AttendanceEntry, 0, len(records))
	present, absent, total := 0.0, 0, 0
	for _, r := range records {
		entries = append(entries, utils.ToAttendanceEntry(r))
		switch r.Status {
		case models.StatusFullDay:
			present += 1.0
			total++
		case models.StatusHalfDay:
			present += 0.5
			total++
		case models.StatusAbsent:
			absent++
			total++
		}
	}

	percentage := 0.0
	if total > 0 {
		percentage = present / float64(total) * 100
	}

	return c.JSON(fiber.Map{
		"records":      entries,
		"present_days": fmt.Sprintf("%.1f", present),
		"absent_days":  absent,
		"percentage":   int(math.Round(percentage)),
	})
}
