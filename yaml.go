package datatable

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, out Output) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
