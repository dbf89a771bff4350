package routes

import (
	"attendance_go/controllers"
	"attendance_go/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes configures all application routes
func SetupRoutes(app *fiber.App) {
	// Initialize controllers
	authController := &controllers.AuthController{}
	classController := &controllers.ClassController{}
	teacherController := &controllers.TeacherController{}
	studentController := &controllers.StudentController{}
	attendanceController := &controllers.AttendanceController{}
	reportController := &controllers.ReportController{}
	holidayController := &controllers.HolidayController{}
	portalController := &controllers.PortalController{}
	healthController := &controllers.HealthController{}

	app.Get("/health", healthController.Health)

	// API group
	api := app.Group("/api")

	// Public routes (no authentication required)
	api.Post("/login", authController.Login)
	api.Post("/register/teacher", teacherController.Register)
	// Class list is public: the signup form needs it
	api.Get("/admin/classes", classController.GetClasses)

	// Session routes
	api.Post("/logout", middleware.JWTMiddleware(), authController.Logout)
	api.Get("/session", middleware.JWTMiddleware(), authController.Session)
	api.Put("/profile/password", middleware.JWTMiddleware(), authController.ChangePassword)

	// Admin routes
	admin := api.Group("/admin", middleware.JWTMiddleware(), middleware.RequireAdmin())
	admin.Get("/pending_teachers", teacherController.GetPendingTeachers)
	admin.Post("/approve_teacher/:id", teacherController.ApproveTeacher)
	admin.Post("/classes", classController.CreateClass)

	// Teacher routes
	teacher := api.Group("/teacher", middleware.JWTMiddleware(), middleware.RequireTeacher())
	teacher.Get("/students", studentController.GetStudents)
	teacher.Post("/students", studentController.AddStudent)
	teacher.Put("/students/:id", studentController.RenameStudent)
	teacher.Delete("/students/:id", studentController.DeleteStudent)
	teacher.Post("/mark", attendanceController.Mark)
	teacher.Post("/mark_all", attendanceController.MarkAll)
	teacher.Get("/monthly_report", reportController.MonthlyReport)
	teacher.Get("/monthly_report/export", reportController.ExportMonthlyReport)

	// Holiday routes (teacher or admin)
	holidays := api.Group("/holidays", middleware.JWTMiddleware(), middleware.RequireTeacherOrAdmin())
	holidays.Get("/", holidayController.GetHolidays)
	holidays.Post("/", holidayController.AddHoliday)
	holidays.Delete("/:date", holidayController.DeleteHoliday)

	// Student routes
	student := api.Group("/student", middleware.JWTMiddleware(), middleware.RequireStudent())
	student.Get("/data", portalController.MyAttendance)
}

// SetupStaticRoutes configures static file serving for the single-page client
func SetupStaticRoutes(app *fiber.App) {
	app.Static("/", "./public")
}
