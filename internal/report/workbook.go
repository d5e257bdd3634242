// Package report exports a dashboard as an XLSX workbook.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/transit-dashboard/internal/domain"
	"github.com/transit-dashboard/internal/narrative"
)

// Sheet names, in workbook order.
const (
	SheetSummary   = "Summary"
	SheetHourly    = "Hourly"
	SheetRoutes    = "Routes"
	SheetLocations = "Locations"
	SheetPayments  = "Payments"
	SheetGender    = "Gender"
)

// ContentType is the media type of the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type sheetWriter struct {
	f      *excelize.File
	header int
}

// Write renders every aggregate of d into a new workbook and writes it to w.
func Write(w io.Writer, d *domain.Dashboard) error {
	f, err := build(d)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteFile is Write to a file path.
func WriteFile(path string, d *domain.Dashboard) error {
	f, err := build(d)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

func build(d *domain.Dashboard) (*excelize.File, error) {
	f := excelize.NewFile()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create header style: %w", err)
	}
	sw := &sheetWriter{f: f, header: header}

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	steps := []struct {
		sheet string
		fill  func(*sheetWriter, string, *domain.Dashboard) error
	}{
		{SheetSummary, writeSummary},
		{SheetHourly, writeHourly},
		{SheetRoutes, writeRoutes},
		{SheetLocations, writeLocations},
		{SheetPayments, writePayments},
		{SheetGender, writeGender},
	}
	for _, s := range steps {
		if s.sheet != SheetSummary {
			if _, err := f.NewSheet(s.sheet); err != nil {
				f.Close()
				return nil, fmt.Errorf("create sheet %s: %w", s.sheet, err)
			}
		}
		if err := s.fill(sw, s.sheet, d); err != nil {
			f.Close()
			return nil, fmt.Errorf("fill sheet %s: %w", s.sheet, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// table writes a bold header row followed by rows, starting at A1.
func (sw *sheetWriter) table(sheet string, columns []string, rows [][]interface{}) error {
	head := make([]interface{}, len(columns))
	for i, c := range columns {
		head[i] = c
	}
	if err := sw.f.SetSheetRow(sheet, "A1", &head); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return err
	}
	if err := sw.f.SetCellStyle(sheet, "A1", last, sw.header); err != nil {
		return err
	}

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return err
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(columns))
	return sw.f.SetColWidth(sheet, "A", lastCol, 16)
}

func writeSummary(sw *sheetWriter, sheet string, d *domain.Dashboard) error {
	banks := "all"
	if len(d.Filter.Banks) > 0 {
		banks = strings.Join(d.Filter.Banks, ", ")
	}
	peak, leader := "n/a", "n/a"
	if d.Hourly.Peak != nil {
		peak = fmt.Sprintf("%s (%d)", narrative.FormatHour(d.Hourly.Peak.Hour), d.Hourly.Peak.Count)
	}
	if d.Routes.Leader != nil {
		leader = fmt.Sprintf("%s (%d)", d.Routes.Leader.Corridor, d.Routes.Leader.Count)
	}

	rows := [][]interface{}{
		{"Day", d.Filter.Day},
		{"Corridor", d.Filter.Corridor},
		{"Banks", banks},
		{"Transactions", d.TotalRows},
		{"Peak hour", peak},
		{"Top corridor", leader},
		{"Peak hour summary", d.Narrative.PeakHour},
		{"Route summary", d.Narrative.TopRoute},
		{"Dominant payment", d.Narrative.DominantMethod},
		{"Other payments", d.Narrative.OtherMethods},
		{"Recommendation", d.Narrative.Recommendation},
	}
	if err := sw.table(sheet, []string{"Field", "Value"}, rows); err != nil {
		return err
	}
	return sw.f.SetColWidth(sheet, "B", "B", 80)
}

func writeHourly(sw *sheetWriter, sheet string, d *domain.Dashboard) error {
	rows := make([][]interface{}, 0, len(d.Hourly.Counts))
	for _, c := range d.Hourly.Counts {
		rows = append(rows, []interface{}{c.Hour, c.Count})
	}
	return sw.table(sheet, []string{"Hour", "Transactions"}, rows)
}

func writeRoutes(sw *sheetWriter, sheet string, d *domain.Dashboard) error {
	rows := make([][]interface{}, 0, len(d.Routes.Top))
	for i, r := range d.Routes.Top {
		rows = append(rows, []interface{}{i + 1, r.Corridor, r.Count})
	}
	return sw.table(sheet, []string{"Rank", "Corridor", "Transactions"}, rows)
}

func writeLocations(sw *sheetWriter, sheet string, d *domain.Dashboard) error {
	rows := make([][]interface{}, 0, len(d.Locations.Pairs))
	for _, p := range d.Locations.Pairs {
		rows = append(rows, []interface{}{
			p.Corridor, p.TapIn.Lat, p.TapIn.Lon, p.TapOut.Lat, p.TapOut.Lon, p.DistanceKm,
		})
	}
	return sw.table(sheet,
		[]string{"Corridor", "Tap-in lat", "Tap-in lon", "Tap-out lat", "Tap-out lon", "Distance km"},
		rows)
}

func writePayments(sw *sheetWriter, sheet string, d *domain.Dashboard) error {
	rows := make([][]interface{}, 0, len(d.Payments.Counts))
	for _, p := range d.Payments.Counts {
		rows = append(rows, []interface{}{p.Name, p.Code, p.Count})
	}
	return sw.table(sheet, []string{"Method", "Code", "Transactions"}, rows)
}

func writeGender(sw *sheetWriter, sheet string, d *domain.Dashboard) error {
	rows := make([][]interface{}, 0, len(d.Gender.Counts))
	for _, g := range d.Gender.Counts {
		rows = append(rows, []interface{}{g.Hour, g.Sex, g.Count})
	}
	return sw.table(sheet, []string{"Hour", "Sex", "Transactions"}, rows)
}
