package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"TubeBend/internal/materials"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List recognized tube materials and their constants",
	RunE: func(cmd *cobra.Command, args []string) error {
		all := materials.All()
		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		fmt.Fprintln(w, "Material\tE (MPa)\tYield (MPa)")
		for _, name := range materials.Names() {
			props := all[name]
			fmt.Fprintf(w, "%s\t%.0f\t%.0f\n", name, props.ElasticModulusMPa, props.YieldStrengthMPa)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}
