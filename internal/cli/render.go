package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/datatable"
	"github.com/bjaus/datatable/xlsxsource"
)

// ErrUnknownChart is returned for a --chart value other than line or bar.
var ErrUnknownChart = errors.New("unknown chart")

type renderOpts struct {
	schema   string
	types    []string
	chart    string
	encoding string
	sheet    string
	output   string
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a CSV or XLSX file as a chart DataTable",
		Long: `Render loads a CSV or XLSX file whose first row is the header and writes it
in the chosen encoding. Column types come from --types or a TOML schema file;
undeclared columns are strings.`,
		Example: `  datatable render sales.csv --types string,number
  datatable render report.xlsx --sheet Q1 --chart bar --encoding table
  datatable render data.csv --schema chart.toml -o chart.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.schema, "schema", "", "TOML schema file")
	cmd.Flags().StringSliceVarP(&opts.types, "types", "t", nil, "column types in header order")
	cmd.Flags().StringVarP(&opts.chart, "chart", "c", "", "chart formatter: line or bar (default line)")
	cmd.Flags().StringVarP(&opts.encoding, "encoding", "e", "", "output encoding (default json)")
	cmd.Flags().StringVar(&opts.sheet, "sheet", "", "worksheet name for XLSX input")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	var sch schema
	if opts.schema != "" {
		s, err := loadSchema(opts.schema)
		if err != nil {
			return err
		}
		sch = s
		logger.Debug("loaded schema", "path", opts.schema, "columns", len(sch.Columns))
	}

	types, labels, err := sch.columns()
	if err != nil {
		return err
	}
	if len(opts.types) > 0 {
		types = types[:0]
		for _, s := range opts.types {
			typ, err := datatable.ParseColumnType(strings.TrimSpace(s))
			if err != nil {
				return err
			}
			types = append(types, typ)
		}
	}

	formatter, err := parseChart(firstNonEmpty(opts.chart, sch.Chart, "line"))
	if err != nil {
		return err
	}
	enc, err := datatable.ParseEncoding(firstNonEmpty(opts.encoding, sch.Encoding, string(datatable.JSON)))
	if err != nil {
		return err
	}

	src, closeSrc, err := openSource(input, firstNonEmpty(opts.sheet, sch.Sheet), types, labels)
	if err != nil {
		return err
	}
	defer closeSrc()

	t := datatable.New(datatable.WithFormatter(formatter)).Source(src)
	if err := t.Err(); err != nil {
		return fmt.Errorf("load %s: %w", input, err)
	}
	logger.Debug("loaded table", "input", input, "columns", len(t.Columns()), "rows", len(t.Rows()))

	if opts.output == "" {
		return t.Write(cmd.OutOrStdout(), enc)
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := writeAndClose(f, t, enc); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	logger.Info("wrote table", "path", opts.output, "encoding", enc)
	return nil
}

// writeAndClose writes t to wc and closes it. A close error is reported when
// the write itself succeeded.
func writeAndClose(wc io.WriteCloser, t *datatable.DataTable, enc datatable.Encoding) error {
	if err := t.Write(wc, enc); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}

func openSource(path, sheet string, types []datatable.ColumnType, labels []string) (datatable.Source, func(), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return xlsxsource.Open(path, types...).Sheet(sheet).Labels(labels...), func() {}, nil
	case ".tsv":
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return datatable.NewCSVSource(f, types...).Comma('\t').Labels(labels...), func() { f.Close() }, nil
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		return datatable.NewCSVSource(f, types...).Labels(labels...), func() { f.Close() }, nil
	}
}

func parseChart(name string) (datatable.Formatter, error) {
	switch strings.ToLower(name) {
	case "line":
		return datatable.LineChart{}, nil
	case "bar":
		return datatable.BarChart{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
