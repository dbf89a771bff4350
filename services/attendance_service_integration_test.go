package services

import (
	"os"
	"testing"

	"attendance_go/database"
	"attendance_go/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB connects to the database named by TEST_DATABASE_DSN and resets
// the tables. Tests depending on it are skipped when the variable is unset.
func openTestDB(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.Migrator().DropTable(
		&models.AttendanceRecord{},
		&models.User{},
		&models.Class{},
	); err != nil {
		t.Fatalf("failed to reset tables: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Class{},
		&models.User{},
		&models.AttendanceRecord{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	database.DB = db
}

func createTestStudent(t *testing.T, username string) *models.User {
	t.Helper()
	class := models.Class{Name: "Test Class " + username}
	if err := database.DB.Create(&class).Error; err != nil {
		t.Fatalf("failed to create class: %v", err)
	}
	student := models.User{
		Username: username,
		Password: "x",
		FullName: "Student " + username,
		Role:     models.RoleStudent,
		ClassID:  &class.ID,
	}
	if err := database.DB.Create(&student).Error; err != nil {
		t.Fatalf("failed to create student: %v", err)
	}
	return &student
}

func TestMarkAttendanceOverwrites(t *testing.T) {
	openTestDB(t)
	student := createTestStudent(t, "overwrite_student")

	first, err := MarkAttendance(student.ID, "2024-03-01", models.StatusFullDay, "on time")
	if err != nil {
		t.Fatalf("unexpected error on first mark: %v", err)
	}
	if first.Status != models.StatusFullDay {
		t.Fatalf("expected stored status %q, got %q", models.StatusFullDay, first.Status)
	}

	second, err := MarkAttendance(student.ID, "2024-03-01", models.StatusAbsent, "")
	if err != nil {
		t.Fatalf("unexpected error on re-mark: %v", err)
	}
	if second.Status != models.StatusAbsent {
		t.Fatalf("expected latest status %q, got %q", models.StatusAbsent, second.Status)
	}

	var count int64
	database.DB.Model(&models.AttendanceRecord{}).
		Where("student_user_id = ? AND date = ?", student.ID, "2024-03-01").
		Count(&count)
	if count != 1 {
		t.Fatalf("expected exactly one row for the pair, got %d", count)
	}

	var stored models.AttendanceRecord
	if err := database.DB.
		Where("student_user_id = ? AND date = ?", student.ID, "2024-03-01").
		First(&stored).Error; err != nil {
		t.Fatalf("unexpected error reloading row: %v", err)
	}
	if stored.Status != models.StatusAbsent || stored.Remarks != "" {
		t.Fatalf("expected overwritten status/remarks, got %q %q", stored.Status, stored.Remarks)
	}
}

func TestDeleteStudentCascades(t *testing.T) {
	openTestDB(t)
	student := createTestStudent(t, "cascade_student")

	for _, date := range []string{"2024-03-01", "2024-03-04", "2024-03-05"} {
		if _, err := MarkAttendance(student.ID, date, models.StatusFullDay, ""); err != nil {
			t.Fatalf("unexpected error marking %s: %v", date, err)
		}
	}

	if err := DeleteStudent(student.ID); err != nil {
		t.Fatalf("unexpected error deleting student: %v", err)
	}

	var users int64
	database.DB.Unscoped().Model(&models.User{}).Where("id = ?", student.ID).Count(&users)
	if users != 0 {
		t.Fatalf("expected student row gone, found %d", users)
	}

	var records int64
	database.DB.Unscoped().Model(&models.AttendanceRecord{}).
		Where("student_user_id = ?", student.ID).Count(&records)
	if records != 0 {
		t.Fatalf("expected attendance rows gone, found %d", records)
	}
}

func TestMarkAllForClassAtomicAndEmpty(t *testing.T) {
	openTestDB(t)

	class := models.Class{Name: "Empty Class"}
	if err := database.DB.Create(&class).Error; err != nil {
		t.Fatalf("failed to create class: %v", err)
	}

	marked, err := MarkAllForClass(class.ID, "2024-03-01", models.StatusFullDay)
	if err != nil {
		t.Fatalf("unexpected error for empty class: %v", err)
	}
	if marked != 0 {
		t.Fatalf("expected zero rows for empty class, got %d", marked)
	}

	for _, name := range []string{"bulk_a", "bulk_b"} {
		student := models.User{
			Username: name,
			Password: "x",
			FullName: name,
			Role:     models.RoleStudent,
			ClassID:  &class.ID,
		}
		if err := database.DB.Create(&student).Error; err != nil {
			t.Fatalf("failed to create student %s: %v", name, err)
		}
	}

	marked, err = MarkAllForClass(class.ID, "2024-03-01", models.StatusHalfDay)
	if err != nil {
		t.Fatalf("unexpected error marking class: %v", err)
	}
	if marked != 2 {
		t.Fatalf("expected 2 rows marked, got %d", marked)
	}

	var count int64
	database.DB.Model(&models.AttendanceRecord{}).
		Where("date = ? AND status = ?", "2024-03-01", models.StatusHalfDay).
		Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 half-day rows, got %d", count)
	}
}
