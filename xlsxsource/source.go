// Package xlsxsource populates a datatable from an Excel worksheet.
package xlsxsource

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/bjaus/datatable"
)

// ErrSheetNotFound is returned when the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// Source is a [datatable.Source] over a worksheet. The first row is the
// header.
type Source struct {
	open    func() (*excelize.File, error)
	sheet   string
	records datatable.Records
}

// Open returns a source reading the workbook at path.
func Open(path string, types ...datatable.ColumnType) *Source {
	return &Source{
		open:    func() (*excelize.File, error) { return excelize.OpenFile(path) },
		records: datatable.Records{Types: types},
	}
}

// FromReader returns a source reading a workbook from r.
func FromReader(r io.Reader, types ...datatable.ColumnType) *Source {
	return &Source{
		open:    func() (*excelize.File, error) { return excelize.OpenReader(r) },
		records: datatable.Records{Types: types},
	}
}

// Sheet selects the worksheet by name. Default: the first sheet.
func (s *Source) Sheet(name string) *Source {
	s.sheet = name
	return s
}

// Labels overrides header labels.
func (s *Source) Labels(labels ...string) *Source {
	s.records.Labels = labels
	return s
}

// Columns implements [datatable.Source]. It reads the whole worksheet.
func (s *Source) Columns(t *datatable.DataTable) error {
	data, err := s.read()
	if err != nil {
		return err
	}
	s.records.Data = data
	return s.records.Columns(t)
}

// Fill implements [datatable.Source].
func (s *Source) Fill(t *datatable.DataTable) error {
	return s.records.Fill(t)
}

func (s *Source) read() ([][]string, error) {
	f, err := s.open()
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	sheet := s.sheet
	if sheet == "" {
		if len(sheets) == 0 {
			return nil, ErrSheetNotFound
		}
		sheet = sheets[0]
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return rows, nil
}
