// Package datatable builds typed tables for charting libraries and encodes
// them in the Google Charts DataTable JSON shape.
//
// A [DataTable] is assembled with chained calls. Columns come first, since
// each row is validated against the columns declared when it is added:
//
//	t := datatable.New().
//		AddStringColumn("Month").
//		AddNumberColumn("Sales").
//		AddRow("Jan", 120).
//		AddRow("Feb", datatable.Formatted(95.5, "$95.50"))
//	if err := t.Err(); err != nil { ... }
//	b, err := json.Marshal(t)
//
// # Columns and Rows
//
// Column types form a closed set: [String], [Number], [Boolean], [Date] and
// [DateTime]. A row may carry fewer values than there are columns; the
// missing cells are nil and encode as {"v":null}. More values than columns is
// an error.
//
// # Errors
//
// Builder calls record the first failure instead of returning it. Check
// [DataTable.Err] after building; [DataTable.Output], [DataTable.Write] and
// [DataTable.MarshalJSON] return it as well. Once an error is recorded, all
// further mutating calls are no-ops, and a failing call never leaves a
// partial change behind. [DataTable.AddRows] validates every row before
// adding any.
//
// The package exports sentinel errors for use with [errors.Is]:
//
//   - [ErrInvalidColumnType] — column type outside the supported set
//   - [ErrTooManyValues] — row has more values than declared columns
//   - [ErrRowLength] — a formatter saw a row whose length differs from the
//     column count
//   - [ErrInvalidValue] — [ParseValue] could not parse its input
//   - [ErrUnsupportedEncoding] — unknown encoding name
//
// # Sources
//
// A [Source] declares columns and fills rows from some origin. Pass it to
// [DataTable.Source], which calls Columns and then Fill. [SourceFuncs] adapts
// plain functions, [Records] reads text records and [CSVSource] reads CSV.
// Spreadsheets are handled by the xlsxsource subpackage.
//
// # Formatters
//
// A [Formatter] turns the table into an [Output]. [LineChart] is the
// default. [BarChart] turns the first column into a discrete string axis.
// Set one with [WithFormatter] or [DataTable.Formatter].
//
// Wire values follow the chart library's JSON rules: times in date and
// datetime columns become "Date(2024,0,31)" literals with a zero-based
// month, and [decimal.Decimal] values become numbers.
//
// # Encodings
//
// [DataTable.Write] and [DataTable.Marshal] serialize the table as [JSON],
// [YAML], [CSV], [TSV], [Table], [Markdown] or [HTML]. Use [ParseEncoding] to
// turn a flag value into an [Encoding].
package datatable
