package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/mpontes/fatura"
	"github.com/mpontes/fatura/csv"
	"github.com/mpontes/fatura/pdf"
	"github.com/mpontes/fatura/process"
	faturaslog "github.com/mpontes/fatura/slog"
	"github.com/mpontes/fatura/sqlite"
	"github.com/mpontes/fatura/xlsx"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	Extract ExtractCmd `cmd:"" help:"Extract billing records from a PDF document."`
	List    ListCmd    `cmd:"" help:"List records persisted by previous extractions."`
}

// Dependencies holds services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// ExtractCmd processes a PDF document into a delimited output file.
type ExtractCmd struct {
	Input       string `arg:"" help:"Path to the source PDF document."`
	Output      string `short:"o" help:"Output file path. Defaults to the input name with the format extension."`
	Format      string `help:"Output format." enum:"csv,xlsx" default:"csv"`
	DB          string `help:"SQLite database to also persist extracted records to."`
	Concurrency int    `short:"c" default:"1" help:"Concurrent page extraction limit."`
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	reader, err := pdf.Open(c.Input)
	if err != nil {
		return err
	}
	defer reader.Close()

	output := c.Output
	if output == "" {
		output = strings.TrimSuffix(c.Input, filepath.Ext(c.Input)) + "." + c.Format
	}

	var writer fatura.RecordWriter
	var save func() error

	switch c.Format {
	case "xlsx":
		xw, err := xlsx.NewWriter()
		if err != nil {
			return err
		}
		defer xw.Close()
		writer = xw
		save = func() error { return xw.SaveAs(output) }
	default:
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create output %q: %w", output, err)
		}
		defer f.Close()
		writer = csv.NewWriter(f)
		save = f.Close
	}

	writer = faturaslog.NewLoggingWriter(writer, deps.Logger)

	var records fatura.RecordService
	if c.DB != "" {
		db := sqlite.NewDB(c.DB)
		if err := db.Open(); err != nil {
			return err
		}
		defer db.Close()
		records = sqlite.NewRecordService(db)
	}

	p := &process.Processor{
		Reader:      reader,
		Writer:      writer,
		Records:     records,
		Source:      filepath.Base(c.Input),
		Logger:      deps.Logger,
		Concurrency: c.Concurrency,
	}

	result, err := p.Run(deps.Ctx, nil)
	if err != nil {
		return err
	}
	if err := save(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Records extracted: %d\n", result.Emitted)
	fmt.Fprintf(deps.Stdout, "Output written to: %s\n", output)
	return nil
}

// ListCmd prints records persisted by previous extractions.
type ListCmd struct {
	DB      string `required:"" help:"SQLite database holding extracted records."`
	Source  string `help:"Filter by source document name."`
	Account string `help:"Filter by account identifier."`
	Limit   int    `default:"50" help:"Maximum number of records to print."`
}

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	db := sqlite.NewDB(c.DB)
	if err := db.Open(); err != nil {
		return err
	}
	defer db.Close()

	filter := fatura.RecordFilter{Limit: c.Limit}
	if c.Source != "" {
		filter.Source = &c.Source
	}
	if c.Account != "" {
		filter.AccountID = &c.Account
	}

	recs, err := sqlite.NewRecordService(db).FindRecords(deps.Ctx, filter)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found.")
		return nil
	}

	tw := tabwriter.NewWriter(deps.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\t"+strings.Join(fatura.Header, "\t"))
	for _, rec := range recs {
		fmt.Fprintln(tw, rec.Source+"\t"+strings.Join(rec.Row(), "\t"))
	}
	return tw.Flush()
}
