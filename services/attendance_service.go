package services

import (
	"attendance_go/database"
	"attendance_go/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// attendanceConflict is the explicit insert-or-replace policy for the
// (student, date) unique key: a second marking for the same day overwrites
// status and remarks instead of accumulating rows.
var attendanceConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "student_user_id"}, {Name: "date"}},
	DoUpdates: clause.AssignmentColumns([]string{"status", "remarks", "updated_at"}),
}

// MarkAttendance upserts one student's attendance for a date.
func MarkAttendance(studentUserID uint, date, status, remarks string) (*models.AttendanceRecord, error) {
	record := models.AttendanceRecord{
		StudentUserID: studentUserID,
		Date:          date,
		Status:        status,
		Remarks:       remarks,
	}
	if err := database.DB.Clauses(attendanceConflict).Create(&record).Error; err != nil {
		return nil, err
	}

	// On the overwrite path the insert id is not the surviving row's id;
	// reload so callers see the stored row
	var stored models.AttendanceRecord
	if err := database.DB.
		Where("student_user_id = ? AND date = ?", studentUserID, date).
		First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// MarkAllForClass upserts every student of a class for a date in a single
// transaction, so a failure never leaves the class half-marked. A class with
// no students is a trivial success.
func MarkAllForClass(classID uint, date, status string) (int, error) {
	var students []models.User
	if err := database.DB.
		Where("role = ? AND class_id = ?", models.RoleStudent, classID).
		Find(&students).Error; err != nil {
		return 0, err
	}
	if len(students) == 0 {
		return 0, nil
	}

	records := make([]models.AttendanceRecord, 0, len(students))
	for _, s := range students {
		records = append(records, models.AttendanceRecord{
			StudentUserID: s.ID,
			Date:          date,
			Status:        status,
			Remarks:       "",
		})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(attendanceConflict).Create(&records).Error
	})
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// DeleteStudent removes a student row together with all their attendance
// rows. Irreversible.
func DeleteStudent(studentUserID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("student_user_id = ?", studentUserID).
			Delete(&models.AttendanceRecord{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&models.User{}, studentUserID).Error
	})
}
