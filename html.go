package datatable

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, t Tabular) error {
	header, rows, types := displayRows(t)
	if len(header) == 0 {
		return nil
	}
	aligns := columnAligns(types)

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  <thead>\n    <tr>"); err != nil {
		return err
	}
	for _, label := range header {
		if _, err := fmt.Fprintf(w, "      <th>%s</th>\n", html.EscapeString(label)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    </tr>\n  </thead>"); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for i, cell := range row {
			style := ""
			if i < len(aligns) && aligns[i] == alignRight {
				style = ` style="text-align: right"`
			}
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", style, html.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}
