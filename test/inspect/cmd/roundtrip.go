package cmd

import (
	"fmt"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-formdata/header/disposition"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip disposition",
	Short: "Shows the diff between a disposition value and its canonical form",
	Args:  cobra.ExactArgs(1),
	Run:   RunRoundtrip,
}

func init() {
	rootCmd.AddCommand(roundtripCmd)
}

func RunRoundtrip(cmd *cobra.Command, args []string) {
	in := args[0]
	out := disposition.ParseValue([]byte(in)).String()

	fmt.Printf("in  = %s\n", in)
	fmt.Printf("out = %s\n", out)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(in, out, false)
	fmt.Println(dmp.DiffPrettyText(diffs))
}
