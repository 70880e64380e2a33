package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "YEAR\tDAY\tTITLE\tSAMPLE")
			for _, d := range a.registry().All() {
				known := 0
				for part := 1; part <= 2; part++ {
					if _, ok := d.Manifest.Sample.Answer(part); ok {
						known++
					}
				}
				fmt.Fprintf(w, "%d\t%d\t%s\t%d/2\n", d.Year, d.Day, d.Title, known)
			}
			return w.Flush()
		},
	}
}
