package main

import (
	"github.com/spf13/cobra"

	"github.com/zostay/go-formdata/test/inspect/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
