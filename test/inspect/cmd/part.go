package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-formdata/header"
)

var partCmd = &cobra.Command{
	Use:   "part file",
	Short: "Parses a part header block from a file and shows what it holds",
	Args:  cobra.ExactArgs(1),
	Run:   RunPart,
}

func init() {
	rootCmd.AddCommand(partCmd)
}

func RunPart(cmd *cobra.Command, args []string) {
	path := args[0]
	block, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	h, err := header.Parse(block, header.CRLF)
	if err != nil {
		var badStart *header.BadStartError
		if !errors.As(err, &badStart) {
			panic(err)
		}
		fmt.Printf("skipped junk at start: %q\n", badStart.BadStart)
	}

	fmt.Printf("path   = %s\n", path)
	fmt.Printf("fields = %d\n", h.Len())
	for i := 0; i < h.Len(); i++ {
		fmt.Printf("  %s\n", h.GetField(i))
	}

	printDisposition(h.ContentDisposition())
}
