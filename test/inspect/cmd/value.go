package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-formdata/header/disposition"
)

var valueCmd = &cobra.Command{
	Use:   "value disposition",
	Short: "Extracts the field name and file name from a disposition value",
	Args:  cobra.ExactArgs(1),
	Run:   RunValue,
}

func init() {
	rootCmd.AddCommand(valueCmd)
}

func RunValue(cmd *cobra.Command, args []string) {
	d := disposition.ParseValue([]byte(args[0]))
	printDisposition(d)
}

func printDisposition(d disposition.Disposition) {
	if name, err := d.FieldName(); err == nil {
		fmt.Printf("name     = %q\n", name)
	} else {
		fmt.Println("name     = (absent)")
	}

	if fn, err := d.Filename(); err == nil {
		fmt.Printf("filename = %q\n", fn)
	} else {
		fmt.Println("filename = (absent)")
	}
}
