package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sheetverify/pkg/sheet"
)

func newLintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint <sheet.yaml>",
		Short: "List rule patterns that cannot be compiled",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sheet.LoadFile(args[0])
			if err != nil {
				return err
			}

			val := a.validator()
			out := cmd.OutOrStdout()
			problems := 0
			for col := range s.Columns() {
				h, err := s.Header(col)
				if err != nil {
					return err
				}
				for i, rule := range h.Rules {
					if err := val.Compile(rule.Pattern); err != nil {
						problems++
						fmt.Fprintf(out, "column %q rule %d: %v\n", h.ID, i+1, err)
					}
				}
			}

			if problems > 0 {
				return errFailing
			}
			fmt.Fprintln(out, "all rule patterns compile")
			return nil
		},
	}
}
