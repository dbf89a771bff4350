package controllers

import (
	"attendance_go/database"
	"attendance_go/middleware"
	"attendance_go/models"
	"attendance_go/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type TeacherController struct{}

// RegisterTeacherRequest represents the teacher signup body
type RegisterTeacherRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=255"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
	ClassID  uint   `json:"class_id" validate:"required"`
}

// Register creates a pending teacher account. Public endpoint; the account
// cannot log in until an admin approves it.
func (tc *TeacherController) Register(c *fiber.Ctx) error {
	var req RegisterTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	req.FullName = utils.SanitizeString(req.FullName)
	req.Username = utils.SanitizeString(req.Username)
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "All fields are required",
		})
	}

	var class models.Class
	if err := database.DB.First(&class, req.ClassID).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Selected class does not exist",
		})
	}

	var existing models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "An account with this username already exists",
		})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to hash password",
		})
	}

	teacher := models.User{
		Username:      req.Username,
		Password:      hashedPassword,
		FullName:      req.FullName,
		Role:          models.RoleTeacher,
		ClassID:       &class.ID,
		TeacherStatus: models.TeacherPending,
	}

	if err := database.DB.Create(&teacher).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "An account with this username already exists",
		})
	}

	middleware.LogActivity(c, "CREATE", "teachers", teacher.ID, fiber.Map{
		"username": teacher.Username,
		"class_id": class.ID,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful! Please wait for admin approval",
	})
}

// GetPendingTeachers returns teachers awaiting approval (admin only)
func (tc *TeacherController) GetPendingTeachers(c *fiber.Ctx) error {
	var teachers []models.User
	if err := database.DB.Preload("Class").
		Where("role = ? AND teacher_status = ?", models.RoleTeacher, models.TeacherPending).
		Order("created_at ASC").
		Find(&teachers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch pending teachers",
		})
	}

	pending := make([]utils.PendingTeacherDTO, 0, len(teachers))
	for _, t := range teachers {
		pending = append(pending, utils.ToPendingTeacherDTO(t))
	}

	return c.JSON(fiber.Map{"pending_teachers": pending})
}

// ApproveTeacher flips a pending teacher to approved (admin only). Approving
// an already-approved teacher is a no-op; unknown or non-teacher ids are 404.
func (tc *TeacherController) ApproveTeacher(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid teacher ID",
		})
	}

	var teacher models.User
	if err := database.DB.
		Where("id = ? AND role = ?", uint(id), models.RoleTeacher).
		First(&teacher).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Teacher not found",
		})
	}

	if teacher.TeacherStatus != models.TeacherApproved {
		if err := database.DB.Model(&teacher).
			Update("teacher_status", models.TeacherApproved).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to approve teacher",
			})
		}
	}

	middleware.LogActivity(c, "UPDATE", "teachers", teacher.ID, fiber.Map{
		"action": "approve",
	})

	return c.JSON(fiber.Map{"message": "Teacher approved"})
}
