package datatable

import (
	"io"

	"github.com/goccy/go-json"
)

func writeJSON(w io.Writer, out Output) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
