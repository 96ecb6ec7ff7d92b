package cli

import (
	"github.com/spf13/cobra"

	"github.com/coral-mesh/schedlayout/internal/cli/helpers"
	"github.com/coral-mesh/schedlayout/internal/sched/sysctl"
)

type tunableRow struct {
	Name      string `json:"name" header:"NAME"`
	Kind      string `json:"kind" header:"KIND"`
	Feature   string `json:"feature" header:"FEATURE"`
	Available bool   `json:"available" header:"AVAILABLE"`
	Value     string `json:"value" header:"VALUE"`
}

func newTunablesCmd() *cobra.Command {
	var (
		format string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "tunables",
		Short: "List the scheduler tunables compiled into this build",
		Long: `List the scheduler tunables that exist in this build with their current
values. With --all, tunables compiled out by the build tags are listed too,
showing the constant that stands in for them, if any.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := helpers.ValidateFormat(format, helpers.ListingFormats); err != nil {
				return err
			}
			formatter, err := helpers.NewFormatter(helpers.OutputFormat(format))
			if err != nil {
				return err
			}
			return formatter.Format(tunableRows(all), cmd.OutOrStdout())
		},
	}

	helpers.AddFormatFlag(cmd, &format, helpers.FormatTable, helpers.ListingFormats)
	cmd.Flags().BoolVar(&all, "all", false, "Include tunables compiled out of this build")

	return cmd
}

func tunableRows(all bool) []tunableRow {
	rows := []tunableRow{}
	for _, d := range sysctl.Catalog() {
		row := tunableRow{
			Name:      d.Name,
			Kind:      d.Kind.String(),
			Feature:   string(d.Feature),
			Available: d.Available(),
		}
		if row.Feature == "" {
			row.Feature = "-"
		}

		if t, ok := sysctl.Lookup(d.Name); ok {
			row.Value = t.String()
		} else {
			if !all {
				continue
			}
			row.Value = "-"
			if d.Fallback != "" {
				row.Value = d.Fallback + " (fallback)"
			}
		}
		rows = append(rows, row)
	}
	return rows
}
