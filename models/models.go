package models

import (
	"database/sql/driver"
	"time"

	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSON field type for GORM
type JSON []byte

func (j JSON) Value() (driver.Value, error) {
	if j.IsNull() {
		return nil, nil
	}
	return string(j), nil
}

func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	s, ok := value.([]byte)
	if !ok {
		return nil
	}
	*j = append((*j)[0:0], s...)
	return nil
}

func (j JSON) MarshalJSON() ([]byte, error) {
	if j == nil {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSON) UnmarshalJSON(data []byte) error {
	if j == nil {
		return nil
	}
	*j = append((*j)[0:0], data...)
	return nil
}

func (j JSON) IsNull() bool {
	return len(j) == 0 || string(j) == "null"
}

// User roles
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Teacher approval states. Only users with role=teacher carry one.
const (
	TeacherPending  = "pending"
	TeacherApproved = "approved"
)

// Attendance statuses
const (
	StatusFullDay = "Full Day"
	StatusHalfDay = "Half Day"
	StatusAbsent  = "Absent"
	StatusHoliday = "Holiday"
)

// Class model
type Class struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;not null;uniqueIndex"`

	// Relationships
	Users []User `json:"users,omitempty" gorm:"foreignKey:ClassID"`
}

// User model. A single table holds admins, teachers and students; students
// always belong to a class, teachers reference the class they registered for.
type User struct {
	BaseModel
	Username      string `json:"username" gorm:"size:100;not null;uniqueIndex"`
	Password      string `json:"-" gorm:"size:255;not null"`
	FullName      string `json:"full_name" gorm:"size:255;not null"`
	Role          string `json:"role" gorm:"size:50;not null;default:'student';type:enum('admin','teacher','student')"` // admin, teacher, student
	ClassID       *uint  `json:"class_id"`
	// default:null keeps the zero value out of inserts; strict MySQL rejects
	// '' for the enum on admin and student rows
	TeacherStatus string `json:"teacher_status,omitempty" gorm:"size:50;default:null;type:enum('pending','approved')"` // pending, approved

	// Relationships
	Class *Class `json:"class,omitempty" gorm:"foreignKey:ClassID"`
}

// AttendanceRecord model. One row per (student, date); marking the same day
// again replaces the row through the unique index.
type AttendanceRecord struct {
	BaseModel
	StudentUserID uint   `json:"student_user_id" gorm:"not null;uniqueIndex:idx_student_date"`
	Date          string `json:"date" gorm:"size:10;not null;uniqueIndex:idx_student_date;index"` // YYYY-MM-DD
	Status        string `json:"status" gorm:"size:50;not null;type:enum('Full Day','Half Day','Absent','Holiday')"`
	Remarks       string `json:"remarks" gorm:"size:500"`

	// Relationships
	Student User `json:"student,omitempty" gorm:"foreignKey:StudentUserID;constraint:OnDelete:CASCADE"`
}

// Holiday model. A date present here overlays every student's column for
// that day in report rendering.
type Holiday struct {
	BaseModel
	Date string `json:"date" gorm:"size:10;not null;uniqueIndex"` // YYYY-MM-DD
}

// Log model for activity tracking
type ActivityLog struct {
	BaseModel
	UserID     uint   `json:"user_id"`
	Action     string `json:"action" gorm:"size:100;not null"`
	Resource   string `json:"resource" gorm:"size:100;not null"`
	ResourceID uint   `json:"resource_id"`
	Details    JSON   `json:"details" gorm:"type:json"`
	IPAddress  string `json:"ip_address" gorm:"size:45"`
	UserAgent  string `json:"user_agent" gorm:"size:500"`

	// Relationships
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
