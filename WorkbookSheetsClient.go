package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JatinVermaJv/sheetSync-dashboard/contracts"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const DefaultSheetName = "Sheet1"

// WorkbookSheetsClient is the concrete spreadsheet provider: one xlsx
// workbook file per spreadsheet id under dir. It is the only place range
// syntax ("Sheet1!A1:C5") is interpreted.
type WorkbookSheetsClient struct {
	dir string
}

func NewWorkbookSheetsClient(dir string) (*WorkbookSheetsClient, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("workbook dir: %w", err)
	}

	return &WorkbookSheetsClient{dir: dir}, nil
}

func (client *WorkbookSheetsClient) CreateSpreadsheet(title string) (*contracts.Spreadsheet, error) {
	spreadsheetId := uuid.NewString()

	file := excelize.NewFile()
	defer file.Close()

	if title != "" && title != DefaultSheetName {
		if err := file.SetSheetName(DefaultSheetName, title); err != nil {
			return nil, err
		}
	}

	if err := file.SaveAs(client.path(spreadsheetId)); err != nil {
		return nil, err
	}

	return &contracts.Spreadsheet{SpreadsheetId: spreadsheetId, Title: title}, nil
}

func (client *WorkbookSheetsClient) GetRange(spreadsheetId string, rangeExpr string) ([][]string, error) {
	file, err := client.open(spreadsheetId)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sheet, startCol, startRow, endCol, endRow, err := client.parseRange(file, rangeExpr)
	if err != nil {
		return nil, err
	}

	values := make([][]string, 0, endRow-startRow+1)
	for row := startRow; row <= endRow; row++ {
		line := make([]string, 0, endCol-startCol+1)
		for col := startCol; col <= endCol; col++ {
			cellName, _ := excelize.CoordinatesToCellName(col, row)
			value, err := file.GetCellValue(sheet, cellName)
			if err != nil {
				return nil, err
			}
			line = append(line, value)
		}
		values = append(values, line)
	}

	return values, nil
}

func (client *WorkbookSheetsClient) UpdateRange(spreadsheetId string, rangeExpr string, values [][]string) error {
	file, err := client.open(spreadsheetId)
	if err != nil {
		return err
	}
	defer file.Close()

	sheet, startCol, startRow, _, _, err := client.parseRange(file, rangeExpr)
	if err != nil {
		return err
	}

	if err = client.writeValues(file, sheet, startCol, startRow, values); err != nil {
		return err
	}

	return file.Save()
}

// AppendRange writes below the last occupied row of the range's sheet,
// mirroring the append semantics of the remote provider API.
func (client *WorkbookSheetsClient) AppendRange(spreadsheetId string, rangeExpr string, values [][]string) error {
	file, err := client.open(spreadsheetId)
	if err != nil {
		return err
	}
	defer file.Close()

	sheet, startCol, _, _, _, err := client.parseRange(file, rangeExpr)
	if err != nil {
		return err
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return err
	}

	if err = client.writeValues(file, sheet, startCol, len(rows)+1, values); err != nil {
		return err
	}

	return file.Save()
}

func (client *WorkbookSheetsClient) writeValues(file *excelize.File, sheet string, startCol int, startRow int, values [][]string) error {
	for i, line := range values {
		for j, value := range line {
			cellName, err := excelize.CoordinatesToCellName(startCol+j, startRow+i)
			if err != nil {
				return err
			}
			if err = file.SetCellValue(sheet, cellName, value); err != nil {
				return err
			}
		}
	}

	return nil
}

func (client *WorkbookSheetsClient) path(spreadsheetId string) string {
	return filepath.Join(client.dir, spreadsheetId+".xlsx")
}

func (client *WorkbookSheetsClient) open(spreadsheetId string) (*excelize.File, error) {
	file, err := excelize.OpenFile(client.path(spreadsheetId))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", spreadsheetId, contracts.SpreadsheetNotFoundError)
		}
		return nil, err
	}

	return file, nil
}

// parseRange resolves "Sheet1!A1:C5" (or "A1:C5" against the first
// sheet, or a single "A1") into inclusive coordinates.
func (client *WorkbookSheetsClient) parseRange(file *excelize.File, rangeExpr string) (sheet string, startCol, startRow, endCol, endRow int, err error) {
	cells := rangeExpr

	if sheetName, rest, found := strings.Cut(rangeExpr, "!"); found {
		sheet = sheetName
		cells = rest
	} else {
		sheet = file.GetSheetName(0)
	}

	start, end, _ := strings.Cut(cells, ":")
	if end == "" {
		end = start
	}

	startCol, startRow, err = excelize.CellNameToCoordinates(start)
	if err != nil {
		return
	}

	endCol, endRow, err = excelize.CellNameToCoordinates(end)
	if err != nil {
		return
	}

	if endCol < startCol || endRow < startRow {
		err = fmt.Errorf("invalid range `%s`", rangeExpr)
	}

	return
}
