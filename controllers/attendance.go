package controllers

import (
	"attendance_go/middleware"
	"attendance_go/services"
	"attendance_go/utils"

	"github.com/gofiber/fiber/v2"
)

type AttendanceController struct{}

// MarkRequest represents the single-student marking body
type MarkRequest struct {
	StudentID uint   `json:"student_id" validate:"required"`
	Status    string `json:"status" validate:"required"`
	Remarks   string `json:"remarks"`
}

// Mark upserts one student's attendance for today. Marking the same student
// twice on one day overwrites the earlier row.
func (ac *AttendanceController) Mark(c *fiber.Ctx) error {
	classID, err := teacherClassID(c)
	if err != nil {
		return err
	}

	var req MarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Student and status are required",
		})
	}
	if !utils.IsValidAttendanceStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid attendance status",
		})
	}

	student, err := findOwnStudent(classID, req.StudentID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Student not found",
		})
	}

	record, err := services.MarkAttendance(student.ID, utils.Today(), req.Status, req.Remarks)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to mark attendance",
		})
	}

	middleware.LogActivity(c, "CREATE", "attendance", record.ID, fiber.Map{
		"student_id": student.ID,
		"date":       record.Date,
		"status":     record.Status,
	})

	return c.JSON(fiber.Map{
		"message": "Attendance marked",
		"record":  record,
	})
}

// MarkAllRequest represents the whole-class marking body
type MarkAllRequest struct {
	Status string `json:"status" validate:"required"`
}

// MarkAll applies one status to every student in the teacher's class for
// today, as a single atomic batch. An empty class succeeds with no rows.
func (ac *AttendanceController) MarkAll(c *fiber.Ctx) error {
	classID, err := teacherClassID(c)
	if err != nil {
		return err
	}

	var req MarkAllRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := validate.Struct(&req); err != nil || !utils.IsValidAttendanceStatus(req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid attendance status",
		})
	}

	marked, err := services.MarkAllForClass(classID, utils.Today(), req.Status)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to mark attendance",
		})
	}

	middleware.LogActivity(c, "CREATE", "attendance", 0, fiber.Map{
		"class_id": classID,
		"status":   req.Status,
		"marked":   marked,
	})

	return c.JSON(fiber.Map{
		"message": "All students marked as " + req.Status,
		"marked":  marked,
	})
}
