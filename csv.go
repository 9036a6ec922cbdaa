package datatable

import (
	"encoding/csv"
	"io"
)

func writeDelimited(w io.Writer, t Tabular, comma rune) error {
	header, rows, _ := displayRows(t)
	if len(header) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
