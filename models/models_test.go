package models

import (
	"sync"
	"testing"

	"gorm.io/gorm/schema"
)

func parseUserSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(&User{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("unexpected error parsing user schema: %v", err)
	}
	return s
}

func TestTeacherStatusOmittedWhenUnset(t *testing.T) {
	s := parseUserSchema(t)

	field := s.LookUpField("teacher_status")
	if field == nil {
		t.Fatalf("teacher_status field not found")
	}
	// Without a database default GORM writes the zero value "" into every
	// insert, which strict MySQL rejects for an enum column. The default
	// makes GORM drop the unset field from admin and student inserts.
	if !field.HasDefaultValue {
		t.Fatalf("teacher_status must declare a database default so unset values stay out of inserts")
	}
	if field.DefaultValueInterface != nil {
		t.Fatalf("teacher_status default must be null, got %v", field.DefaultValueInterface)
	}
}

func TestStudentDateUniqueIndex(t *testing.T) {
	s, err := schema.Parse(&AttendanceRecord{}, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("unexpected error parsing attendance schema: %v", err)
	}

	idx, ok := s.ParseIndexes()["idx_student_date"]
	if !ok {
		t.Fatalf("idx_student_date index not found")
	}
	if idx.Class != "UNIQUE" {
		t.Fatalf("expected unique index, got %q", idx.Class)
	}
	if len(idx.Fields) != 2 {
		t.Fatalf("expected composite (student, date) index, got %d fields", len(idx.Fields))
	}
}
