package controllers

import (
	"attendance_go/database"
	"attendance_go/middleware"
	"attendance_go/models"
	"attendance_go/services"
	"attendance_go/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type StudentController struct{}

// teacherClassID resolves the calling teacher's class. Teachers without a
// class cannot manage students.
func teacherClassID(c *fiber.Ctx) (uint, error) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		return 0, err
	}
	if user.ClassID == nil {
		return 0, fiber.NewError(fiber.StatusForbidden, "No class assigned to this account")
	}
	return *user.ClassID, nil
}

// findOwnStudent loads a student by id restricted to the teacher's class.
// Students from other classes look like they don't exist.
func findOwnStudent(classID uint, id uint) (*models.User, error) {
	var student models.User
	err := database.DB.
		Where("id = ? AND role = ? AND class_id = ?", id, models.RoleStudent, classID).
		First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetStudents returns the teacher's students ordered by name
func (sc *StudentController) GetStudents(c *fiber.Ctx) error {
	classID, err := teacherClassID(c)
	if err != nil {
		return err
	}

	var students []models.User
	if err := database.DB.
		Where("role = ? AND class_id = ?", models.RoleStudent, classID).
		Order("full_name ASC").
		Find(&students).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to fetch students",
		})
	}

	return c.JSON(fiber.Map{"students": utils.ToStudentShorts(students)})
}

// AddStudentRequest represents the student creation body
type AddStudentRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6"`
}

// AddStudent creates a student account in the teacher's class. Students
// don't need approval.
func (sc *StudentController) AddStudent(c *fiber.Ctx) error {
	classID, err := teacherClassID(c)
	if err != nil {
		return err
	}

	var req AddStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	req.Name = utils.SanitizeString(req.Name)
	req.Username = utils.SanitizeString(req.Username)
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name, username and password are required",
		})
	}

	var existing models.User
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Student '" + req.Name + "' already exists",
		})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to hash password",
		})
	}

	student := models.User{
		Username: req.Username,
		Password: hashedPassword,
		FullName: req.Name,
		Role:     models.RoleStudent,
		ClassID:  &classID,
	}

	if err := database.DB.Create(&student).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Student '" + req.Name + "' already exists",
		})
	}

	middleware.LogActivity(c, "CREATE", "students", student.ID, fiber.Map{
		"username": student.Username,
		"class_id": classID,
	})

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Student '" + student.FullName + "' added",
		"student": utils.ToStudentShort(student),
	})
}

// RenameStudent updates a student's name within the teacher's class
func (sc *StudentController) RenameStudent(c *fiber.Ctx) error {
	classID, err := teacherClassID(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid student ID",
		})
	}

	var req struct {
		Name string `json:"name" validate:"required,min=1,max=255"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	req.Name = utils.SanitizeString(req.Name)
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name is required",
		})
	}

	student, err := findOwnStudent(classID, uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Student not found",
		})
	}

	if err := database.DB.Model(student).Update("full_name", req.Name).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to update student",
		})
	}

	middleware.LogActivity(c, "UPDATE", "students", student.ID, fiber.Map{"name": req.Name})

	return c.JSON(fiber.Map{
		"message": "Student updated",
		"student": utils.StudentShort{ID: student.ID, FullName: req.Name},
	})
}

// DeleteStudent removes a student and all their attendance rows
func (sc *StudentController) DeleteStudent(c *fiber.Ctx) error {
	classID, err := teacherClassID(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid student ID",
		})
	}

	student, err := findOwnStudent(classID, uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Student not found",
		})
	}

	if err := services.DeleteStudent(student.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to delete student",
		})
	}

	middleware.LogActivity(c, "DELETE", "students", student.ID, fiber.Map{
		"username": student.Username,
	})

	return c.JSON(fiber.Map{"message": "Student deleted"})
}
