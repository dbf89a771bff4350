package controllers

import (
	"attendance_go/database"
	"attendance_go/middleware"
	"attendance_go/models"
	"attendance_go/utils"

	"github.com/gofiber/fiber/v2"
)

type ClassController struct{}

// GetClasses returns all classes ordered by name. Public: the signup form
// needs the list before anyone is logged in.
func (cc *ClassController) GetClasses(c *fiber.Ctx) error {
	var classes []models.Class
	if err := database.DB.Order("name ASC").Find(&classes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch classes",
		})
	}

	out := make([]utils.ClassShort, 0, len(classes))
	for _, cl := range classes {
		out = append(out, utils.ClassShort{ID: cl.ID, Name: cl.Name})
	}

	return c.JSON(fiber.Map{"classes": out})
}

// CreateClassRequest represents the class creation body
type CreateClassRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

// CreateClass creates a new class (admin only)
func (cc *ClassController) CreateClass(c *fiber.Ctx) error {
	var req CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	req.Name = utils.SanitizeString(req.Name)
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Class name is required",
		})
	}

	var existing models.Class
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Class with this name already exists",
		})
	}

	class := models.Class{Name: req.Name}
	if err := database.DB.Create(&class).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Class with this name already exists",
		})
	}

	middleware.LogActivity(c, "CREATE", "classes", class.ID, fiber.Map{"name": class.Name})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Class '" + class.Name + "' added",
		"class":   utils.ClassShort{ID: class.ID, Name: class.Name},
	})
}
