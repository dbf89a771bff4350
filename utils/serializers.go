package utils

import (
	"attendance_go/models"
)

// Compact representations used across APIs
type StudentShort struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
}

type ClassShort struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type PendingTeacherDTO struct {
	ID        uint   `json:"id"`
	FullName  string `json:"full_name"`
	Username  string `json:"username"`
	ClassName string `json:"class_name"`
}

type AttendanceEntry struct {
	Date    string `json:"date"`
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

// ToStudentShort maps a student user row to the compact DTO.
func ToStudentShort(u models.User) StudentShort {
	return StudentShort{ID: u.ID, FullName: u.FullName}
}

// ToStudentShorts maps a slice of student users, preserving order.
func ToStudentShorts(users []models.User) []StudentShort {
	out := make([]StudentShort, 0, len(users))
	for _, u := range users {
		out = append(out, ToStudentShort(u))
	}
	return out
}

// ToPendingTeacherDTO maps a pending teacher. Assumes caller preloaded Class.
func ToPendingTeacherDTO(u models.User) PendingTeacherDTO {
	dto := PendingTeacherDTO{
		ID:       u.ID,
		FullName: u.FullName,
		Username: u.Username,
	}
	if u.Class != nil {
		dto.ClassName = u.Class.Name
	}
	return dto
}

// ToAttendanceEntry maps an attendance row to its wire form.
func ToAttendanceEntry(r models.AttendanceRecord) AttendanceEntry {
	return AttendanceEntry{Date: r.Date, Status: r.Status, Remarks: r.Remarks}
}
