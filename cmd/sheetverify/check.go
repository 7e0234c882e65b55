package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sheetverify/pkg/logger"
	"github.com/dmitrymomot/sheetverify/pkg/sheet"
	"github.com/dmitrymomot/sheetverify/pkg/verify"
	"github.com/dmitrymomot/sheetverify/pkg/workbook"
)

func newCheckCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "check <sheet.yaml>",
		Short: "List cells that fail their column rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sheet.LoadFile(args[0])
			if err != nil {
				return err
			}
			wb, err := workbook.Open(s, a.engineOptions()...)
			if err != nil {
				return err
			}

			report := wb.Report()
			a.log.Debug("sheet checked",
				logger.Count("rows", s.Rows()),
				logger.Count("columns", s.Columns()),
				logger.Count("failing", len(report)),
			)

			if asJSON {
				err = writeJSON(cmd.OutOrStdout(), report)
			} else {
				err = writeText(cmd.OutOrStdout(), s, report)
			}
			if err != nil {
				return err
			}
			if len(report) > 0 {
				return errFailing
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return cmd
}

func writeJSON(w io.Writer, report []workbook.CellReport) error {
	if report == nil {
		report = []workbook.CellReport{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func writeText(w io.Writer, s *sheet.Sheet, report []workbook.CellReport) error {
	if len(report) == 0 {
		_, err := fmt.Fprintln(w, "all cells pass")
		return err
	}
	for _, r := range report {
		title := r.ColumnID
		if h, err := s.Header(r.Col); err == nil && h.Title != "" {
			title = h.Title
		}
		for _, f := range r.Failures {
			if _, err := fmt.Fprintf(w, "R%dC%d\t%s\t%q\t%s\n",
				r.Row+1, r.Col+1, title, verify.Stringify(f.Value), f.ErrorMessage); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%d failing cell(s)\n", len(report))
	return err
}
