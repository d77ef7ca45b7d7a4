package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"TubeBend/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bendcli",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bendcli v%s\n", version.Version)
		fmt.Println("Tube Bending Calculator")
		if version.GitCommit != "unknown" {
			fmt.Printf("commit: %s\n", version.GitCommit)
		}
		if version.BuildTime != "unknown" {
			fmt.Printf("built:  %s\n", version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
