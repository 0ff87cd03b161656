package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Tools for poking at form-data part headers",
}

func Execute() error {
	return rootCmd.Execute()
}
