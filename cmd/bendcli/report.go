package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"TubeBend/internal/calc/bend"
	"TubeBend/internal/calc/report"
)

var reportOut string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the PDF report for a calculation",
	Long: `Run the calculation and write the PDF report to disk.

Example:
  bendcli report --material "Carbon Steel" --od 10 --wall 1 --angle 90 \
      --straight 500 --d 3.0 --out tube_bending_report.pdf`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().AddFlagSet(calcCmd.Flags())
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "tube_bending_report.pdf", "Output file path")

	reportCmd.MarkFlagRequired("material")
	reportCmd.MarkFlagRequired("od")
	reportCmd.MarkFlagRequired("wall")
}

func runReport(cmd *cobra.Command, args []string) error {
	input, mat, err := collectInput()
	if err != nil {
		return err
	}
	res := bend.Calculate(input, mat)

	data, err := report.Build(input, res)
	if err != nil {
		return err
	}
	if err := os.WriteFile(reportOut, data, 0644); err != nil {
		return err
	}
	fmt.Println("Report written to", reportOut)
	return nil
}
