package services

import (
	"attendance_go/database"
	"attendance_go/models"
	"attendance_go/utils"
	"fmt"
	"time"
)

// ReportCell is one student's stored marking for one day.
type ReportCell struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

// StudentSummary accumulates a student's month. Present counts 1.0 per Full
// Day and 0.5 per Half Day; Absent is a whole number.
type StudentSummary struct {
	Present float64 `json:"present"`
	Absent  int     `json:"absent"`
}

// MonthlyReport is the aggregated month grid for one class.
type MonthlyReport struct {
	Students    []utils.StudentShort           `json:"students"`
	Report      map[uint]map[string]ReportCell `json:"report"`
	Summary     map[uint]StudentSummary        `json:"summary"`
	DaysInMonth []string                       `json:"days_in_month"`
	Holidays    []string                       `json:"holidays"`

	monthStr   string
	fullDays   []string
	holidaySet map[string]bool
}

// DaysInMonth returns every date of the month as YYYY-MM-DD, in order.
// time.Date normalizes day 0 of the next month to the last day of this one.
func DaysInMonth(year int, month time.Month) []string {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	days := make([]string, 0, last)
	for d := 1; d <= last; d++ {
		days = append(days, fmt.Sprintf("%04d-%02d-%02d", year, int(month), d))
	}
	return days
}

// dayOfMonth extracts the zero-padded DD part of a YYYY-MM-DD string.
func dayOfMonth(date string) string {
	if len(date) < 10 {
		return date
	}
	return date[8:10]
}

// BuildMonthlyReport aggregates attendance rows into the per-student report
// grid and summary counts. Rows dated on a declared holiday keep their stored
// status in the grid but are excluded from the counts: the holiday overlay
// wins.
func BuildMonthlyReport(year int, month time.Month, students []models.User, records []models.AttendanceRecord, holidayDates []string) *MonthlyReport {
	fullDays := DaysInMonth(year, month)

	holidaySet := make(map[string]bool, len(holidayDates))
	holidayDays := make([]string, 0, len(holidayDates))
	for _, d := range holidayDates {
		holidaySet[d] = true
		holidayDays = append(holidayDays, dayOfMonth(d))
	}

	report := make(map[uint]map[string]ReportCell, len(students))
	summary := make(map[uint]StudentSummary, len(students))
	for _, s := range students {
		report[s.ID] = make(map[string]ReportCell)
		summary[s.ID] = StudentSummary{}
	}

	for _, r := range records {
		cells, ok := report[r.StudentUserID]
		if !ok {
			continue
		}
		cells[r.Date] = ReportCell{Status: r.Status, Remarks: r.Remarks}

		if holidaySet[r.Date] {
			continue
		}
		sum := summary[r.StudentUserID]
		switch r.Status {
		case models.StatusFullDay:
			sum.Present += 1.0
		case models.StatusHalfDay:
			sum.Present += 0.5
		case models.StatusAbsent:
			sum.Absent++
		}
		summary[r.StudentUserID] = sum
	}

	dayNumbers := make([]string, len(fullDays))
	for i, d := range fullDays {
		dayNumbers[i] = dayOfMonth(d)
	}

	return &MonthlyReport{
		Students:    utils.ToStudentShorts(students),
		Report:      report,
		Summary:     summary,
		DaysInMonth: dayNumbers,
		Holidays:    holidayDays,

		monthStr:   fmt.Sprintf("%04d-%02d", year, int(month)),
		fullDays:   fullDays,
		holidaySet: holidaySet,
	}
}

// Month returns the YYYY-MM the report covers.
func (r *MonthlyReport) Month() string {
	return r.monthStr
}

// ExportRows renders the report as tabular rows for download: one header,
// then one row per student with a single-letter cell per day and trailing
// present/absent totals. Cell letters follow the classic register notation
// (F, H, A, HLY).
func (r *MonthlyReport) ExportRows() [][]string {
	header := make([]string, 0, len(r.fullDays)+3)
	header = append(header, "Student Name")
	header = append(header, r.DaysInMonth...)
	header = append(header, "Present (Days)", "Absent (Days)")

	rows := [][]string{header}
	for _, s := range r.Students {
		row := make([]string, 0, len(header))
		row = append(row, s.FullName)
		for _, day := range r.fullDays {
			status := r.Report[s.ID][day].Status
			if r.holidaySet[day] {
				status = models.StatusHoliday
			}
			var cell string
			switch status {
			case models.StatusFullDay:
				cell = "F"
			case models.StatusHalfDay:
				cell = "H"
			case models.StatusAbsent:
				cell = "A"
			case models.StatusHoliday:
				cell = "HLY"
			}
			row = append(row, cell)
		}
		sum := r.Summary[s.ID]
		row = append(row, fmt.Sprintf("%.1f", sum.Present), fmt.Sprintf("%d", sum.Absent))
		rows = append(rows, row)
	}
	return rows
}

// GetMonthlyReport loads a class's students, their attendance rows for the
// month and the month's holidays, then aggregates them.
func GetMonthlyReport(classID uint, monthStr string) (*MonthlyReport, error) {
	year, month, err := utils.ParseMonth(monthStr)
	if err != nil {
		return nil, err
	}

	var students []models.User
	if err := database.DB.
		Where("role = ? AND class_id = ?", models.RoleStudent, classID).
		Order("full_name ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}

	studentIDs := make([]uint, 0, len(students))
	for _, s := range students {
		studentIDs = append(studentIDs, s.ID)
	}

	var records []models.AttendanceRecord
	if len(studentIDs) > 0 {
		if err := database.DB.
			Where("student_user_id IN ? AND date LIKE ?", studentIDs, monthStr+"-%").
			Find(&records).Error; err != nil {
			return nil, err
		}
	}

	var holidays []models.Holiday
	if err := database.DB.
		Where("date LIKE ?", monthStr+"-%").
		Order("date ASC").
		Find(&holidays).Error; err != nil {
		return nil, err
	}
	holidayDates := make([]string, 0, len(holidays))
	for _, h := range holidays {
		holidayDates = append(holidayDates, h.Date)
	}

	return BuildMonthlyReport(year, month, students, records, holidayDates), nil
}
