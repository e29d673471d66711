package analytics

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	dailySheet = "Daily"
	staffSheet = "Staff"
)

func renderWorkbook(stats DashboardStats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dailySheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(staffSheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0EBF5"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "#000000", Style: 1},
		},
	})
	if err != nil {
		return nil, err
	}

	rows := [][]any{{"Date", "Clock-ins", "Average hours"}}
	for _, d := range stats.DailyStats {
		rows = append(rows, []any{d.Date, d.ClockIns, d.AvgHours})
	}
	if err := writeRows(f, dailySheet, rows, headerStyle); err != nil {
		return nil, err
	}

	rows = [][]any{{"Email", "Total hours"}}
	for _, s := range stats.StaffWeeklyHours {
		rows = append(rows, []any{s.Email, s.TotalHours})
	}
	if err := writeRows(f, staffSheet, rows, headerStyle); err != nil {
		return nil, err
	}

	_ = f.SetColWidth(dailySheet, "A", "C", 16)
	_ = f.SetColWidth(staffSheet, "A", "A", 32)
	_ = f.SetColWidth(staffSheet, "B", "B", 14)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any, headerStyle int) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	return nil
}
