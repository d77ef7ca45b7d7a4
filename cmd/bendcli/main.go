// bendcli runs the tube-bending calculator offline: same engine and
// report builder as the service, no server or account required.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bendcli",
	Short: "Tube bending calculator",
	Long: `bendcli - Tube Bending Calculator

Computes single-bend tube geometry from the relationships used in
bending manuals:
  - Wall Factor (WF = OD / wall)
  - Center-Line Radius (CLR = D x OD)
  - Bend arc length and total tube length
  - A simplified outer-fibre stress and factor-of-safety estimate

Stress and FoS values are teaching-level estimates for study and
comparison, not for final certification.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
