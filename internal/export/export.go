// Package export writes the detail projection and the map points as downloadable files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"plazas-monitor/internal/dataset"
	"plazas-monitor/internal/geo"
)

// DetailSheet is the worksheet name of the XLSX export.
const DetailSheet = "Plazas"

const bom = "\ufeff"

// WriteDetailCSV writes t as a spreadsheet-friendly CSV: UTF-8 BOM, ';' separator, CRLF line ends.
func WriteDetailCSV(w io.Writer, t *dataset.Table) error {
	if _, err := io.WriteString(w, bom); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	cw.UseCRLF = true
	if err := cw.Write(t.Columns()); err != nil {
		return err
	}
	var werr error
	t.Each(func(_ int, row []string) {
		if werr == nil {
			werr = cw.Write(row)
		}
	})
	if werr != nil {
		return werr
	}
	cw.Flush()
	return cw.Error()
}

// WriteDetailXLSX writes t to a single-sheet workbook: header row, then one row per record.
func WriteDetailXLSX(w io.Writer, t *dataset.Table) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", DetailSheet); err != nil {
		return err
	}
	cols := t.Columns()
	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(DetailSheet, "A1", &header); err != nil {
		return err
	}
	if len(cols) > 0 {
		last, _ := excelize.ColumnNumberToName(len(cols))
		if err := f.SetColWidth(DetailSheet, "A", last, 22); err != nil {
			return err
		}
	}
	var werr error
	t.Each(func(i int, row []string) {
		if werr != nil {
			return
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			werr = err
			return
		}
		vals := make([]interface{}, len(row))
		for j, v := range row {
			vals[j] = v
		}
		werr = f.SetSheetRow(DetailSheet, cell, &vals)
	})
	if werr != nil {
		return fmt.Errorf("export: xlsx row: %w", werr)
	}
	return f.Write(w)
}

// WritePointsCSV writes map points with header province,district,count,lat,lon.
func WritePointsCSV(w io.Writer, points []geo.Point) error {
	if points == nil {
		points = []geo.Point{}
	}
	cw := csv.NewWriter(w)
	return gocsv.MarshalCSV(&points, cw)
}
