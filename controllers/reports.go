package controllers

import (
	"attendance_go/config"
	"attendance_go/services"
	"attendance_go/storage"
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type ReportController struct{}

// MonthlyReport returns the aggregated month grid for the teacher's class
func (rc *ReportController) MonthlyReport(c *fiber.Ctx) error {
	classID, err := teacherClassID(c)
	if err != nil {
		return err
	}

	monthStr := c.Query("month")
	if monthStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Month parameter is required",
		})
	}

	report, err := services.GetMonthlyReport(classID, monthStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	return c.JSON(report)
}

// ExportMonthlyReport renders the month grid as a downloadable file. Formats:
// csv (default) and xlsx.
func (rc *ReportController) ExportMonthlyReport(c *fiber.Ctx) error {
	classID, err := teacherClassID(c)
	if err != nil {
		return err
	}

	monthStr := c.Query("month")
	if monthStr == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Month parameter is required",
		})
	}
	format := c.Query("format", "csv")
	if format != "csv" && format != "xlsx" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Unsupported export format",
		})
	}

	report, err := services.GetMonthlyReport(classID, monthStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
	rows := report.ExportRows()

	var (
		data        []byte
		contentType string
	)
	switch format {
	case "xlsx":
		data, err = writeXLSX(rows)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		data, err = writeCSV(rows)
		contentType = "text/csv"
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to generate export",
		})
	}

	archiveExport(classID, report.Month(), data, format, contentType)

	filename := fmt.Sprintf("attendance_report_%s.%s", report.Month(), format)
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

func writeCSV(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeXLSX(rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Report"
	f.SetSheetName("Sheet1", sheet)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// archiveExport ships a copy of the generated file to S3 when configured.
// Archive failures never fail the download.
func archiveExport(classID uint, month string, data []byte, extension, contentType string) {
	if !config.AppConfig.ArchiveExports {
		return
	}
	svc, err := storage.NewStorageService()
	if err != nil {
		logrus.WithError(err).Warn("export archive unavailable")
		return
	}
	key, err := svc.ArchiveExport(classID, month, data, extension, contentType)
	if err != nil {
		logrus.WithError(err).Warn("failed to archive export")
		return
	}
	logrus.WithField("key", key).Info("export archived")
}
