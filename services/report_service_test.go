package services

import (
	"testing"
	"time"

	"attendance_go/models"
)

func student(id uint, name string) models.User {
	return models.User{
		BaseModel: models.BaseModel{ID: id},
		FullName:  name,
		Role:      models.RoleStudent,
	}
}

func record(studentID uint, date, status string) models.AttendanceRecord {
	return models.AttendanceRecord{
		StudentUserID: studentID,
		Date:          date,
		Status:        status,
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		expDays int
	}{
		{name: "leap february", year: 2024, month: time.February, expDays: 29},
		{name: "plain february", year: 2023, month: time.February, expDays: 28},
		{name: "thirty day month", year: 2024, month: time.April, expDays: 30},
		{name: "thirty one day month", year: 2024, month: time.January, expDays: 31},
		{name: "december year boundary", year: 2023, month: time.December, expDays: 31},
		{name: "century non leap", year: 1900, month: time.February, expDays: 28},
		{name: "quad century leap", year: 2000, month: time.February, expDays: 29},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			days := DaysInMonth(tc.year, tc.month)
			if len(days) != tc.expDays {
				t.Fatalf("expected %d days, got %d", tc.expDays, len(days))
			}
			if got := days[0][8:10]; got != "01" {
				t.Fatalf("expected zero-padded first day, got %q", got)
			}
		})
	}
}

func TestBuildMonthlyReportSummary(t *testing.T) {
	students := []models.User{student(1, "Bob")}
	records := []models.AttendanceRecord{
		record(1, "2024-03-01", models.StatusFullDay),
		record(1, "2024-03-04", models.StatusFullDay),
		record(1, "2024-03-05", models.StatusHalfDay),
		record(1, "2024-03-06", models.StatusAbsent),
		record(1, "2024-03-07", models.StatusAbsent),
	}

	report := BuildMonthlyReport(2024, time.March, students, records, nil)

	sum := report.Summary[1]
	if sum.Present != 2.5 {
		t.Fatalf("expected present 2.5, got %v", sum.Present)
	}
	if sum.Absent != 2 {
		t.Fatalf("expected absent 2, got %d", sum.Absent)
	}

	cell, ok := report.Report[1]["2024-03-01"]
	if !ok {
		t.Fatalf("expected a cell for 2024-03-01")
	}
	if cell.Status != models.StatusFullDay {
		t.Fatalf("expected status %q, got %q", models.StatusFullDay, cell.Status)
	}
}

func TestBuildMonthlyReportSparse(t *testing.T) {
	students := []models.User{student(1, "Bob")}
	records := []models.AttendanceRecord{
		record(1, "2024-03-01", models.StatusFullDay),
	}

	report := BuildMonthlyReport(2024, time.March, students, records, nil)

	if len(report.Report[1]) != 1 {
		t.Fatalf("expected exactly one marked day, got %d", len(report.Report[1]))
	}
	if _, ok := report.Report[1]["2024-03-02"]; ok {
		t.Fatalf("unmarked day must have no entry")
	}
	if len(report.DaysInMonth) != 31 {
		t.Fatalf("expected 31 day columns, got %d", len(report.DaysInMonth))
	}
}

func TestBuildMonthlyReportHolidayOverlay(t *testing.T) {
	students := []models.User{student(1, "Bob"), student(2, "Carol")}
	records := []models.AttendanceRecord{
		// Bob was marked present on what later became a holiday
		record(1, "2024-03-08", models.StatusFullDay),
		record(1, "2024-03-11", models.StatusFullDay),
		// Carol has her own Holiday-status row on an ordinary day
		record(2, "2024-03-12", models.StatusHoliday),
	}
	holidays := []string{"2024-03-08"}

	report := BuildMonthlyReport(2024, time.March, students, records, holidays)

	// Overlay wins in the counts: the 03-08 full day doesn't accumulate
	if got := report.Summary[1].Present; got != 1.0 {
		t.Fatalf("expected present 1.0 with holiday excluded, got %v", got)
	}
	// But the stored row still shows up in the grid with its own status
	if cell := report.Report[1]["2024-03-08"]; cell.Status != models.StatusFullDay {
		t.Fatalf("expected stored status preserved in grid, got %q", cell.Status)
	}

	// A per-student Holiday row counts as neither present nor absent
	if sum := report.Summary[2]; sum.Present != 0 || sum.Absent != 0 {
		t.Fatalf("expected empty summary for holiday-status row, got %+v", sum)
	}

	if len(report.Holidays) != 1 || report.Holidays[0] != "08" {
		t.Fatalf("expected holidays [08], got %v", report.Holidays)
	}
}

func TestBuildMonthlyReportIgnoresForeignRecords(t *testing.T) {
	students := []models.User{student(1, "Bob")}
	records := []models.AttendanceRecord{
		record(99, "2024-03-01", models.StatusFullDay),
	}

	report := BuildMonthlyReport(2024, time.March, students, records, nil)

	if len(report.Report[1]) != 0 {
		t.Fatalf("records of students outside the class must be ignored")
	}
	if _, ok := report.Summary[99]; ok {
		t.Fatalf("no summary must exist for a student outside the class")
	}
}

func TestExportRows(t *testing.T) {
	students := []models.User{student(1, "Bob")}
	records := []models.AttendanceRecord{
		record(1, "2024-02-01", models.StatusFullDay),
		record(1, "2024-02-02", models.StatusHalfDay),
		record(1, "2024-02-05", models.StatusAbsent),
		record(1, "2024-02-06", models.StatusHoliday),
		record(1, "2024-02-09", models.StatusFullDay),
	}
	holidays := []string{"2024-02-09"}

	report := BuildMonthlyReport(2024, time.February, students, records, holidays)
	rows := report.ExportRows()

	if len(rows) != 2 {
		t.Fatalf("expected header plus one student row, got %d rows", len(rows))
	}

	header := rows[0]
	// 29 day columns in a leap february plus name and two totals
	if len(header) != 32 {
		t.Fatalf("expected 32 header columns, got %d", len(header))
	}
	if header[0] != "Student Name" || header[1] != "01" || header[30] != "Present (Days)" {
		t.Fatalf("unexpected header layout: %v", header[:3])
	}

	row := rows[1]
	if row[0] != "Bob" {
		t.Fatalf("expected student name first, got %q", row[0])
	}
	checks := map[int]string{
		1:  "F",   // 02-01 full day
		2:  "H",   // 02-02 half day
		3:  "",    // 02-03 unmarked
		5:  "A",   // 02-05 absent
		6:  "HLY", // 02-06 own holiday status
		9:  "HLY", // 02-09 overlay beats the stored full day
		30: "1.5", // present excludes the overlaid day
		31: "1",
	}
	for idx, want := range checks {
		if row[idx] != want {
			t.Fatalf("column %d: expected %q, got %q", idx, want, row[idx])
		}
	}
}

func TestReportMonth(t *testing.T) {
	report := BuildMonthlyReport(2024, time.March, nil, nil, nil)
	if report.Month() != "2024-03" {
		t.Fatalf("expected month 2024-03, got %q", report.Month())
	}
}
