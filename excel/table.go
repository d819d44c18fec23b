// Package excel renders area/slack records as an xlsx workbook.
package excel

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
	"kastelo.dev/areaslack"
)

// Header is the first row of the table.
var Header = []string{"Folder", "ChipArea", "Slack"}

func TableXLSX(recs []areaslack.Record) ([]byte, error) {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "kastelo.dev/areaslack",
	})

	sheet := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())

	_ = xlsx.SetColWidth(sheet, "A", "A", 30)
	_ = xlsx.SetColWidth(sheet, "B", "C", 15)

	if err := writeTable(xlsx, sheet, recs); err != nil {
		return nil, err
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the table to path, replacing any existing file.
func WriteFile(path string, recs []areaslack.Record) error {
	bs, err := TableXLSX(recs)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return os.WriteFile(path, bs, 0o644)
}

func writeTable(xlsx *excelize.File, sheet string, recs []areaslack.Record) error {
	row := 1
	for i, hdr := range Header {
		if err := xlsx.SetCellStr(sheet, cell('A'+rune(i), row), hdr); err != nil {
			return err
		}
	}
	style, err := xlsx.NewStyle(mergeStyles(fontBold(), thinBorder("bottom"), textAlignment("center")))
	if err != nil {
		return err
	}
	if err := xlsx.SetCellStyle(sheet, cell('A', row), cell('A'+rune(len(Header)-1), row), style); err != nil {
		return err
	}
	row++

	for _, rec := range recs {
		if err := xlsx.SetCellStr(sheet, cell('A', row), rec.Folder); err != nil {
			return err
		}
		if err := setNumber(xlsx, sheet, cell('B', row), rec.ChipArea); err != nil {
			return err
		}
		if err := setNumber(xlsx, sheet, cell('C', row), rec.Slack); err != nil {
			return err
		}
		row++
	}

	return nil
}

// setNumber leaves the cell empty for an absent number.
func setNumber(xlsx *excelize.File, sheet, ref string, n areaslack.Number) error {
	if !n.Valid {
		return nil
	}
	return xlsx.SetCellFloat(sheet, ref, n.Value, -1, 64)
}
