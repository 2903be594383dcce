package xmltok

import (
	"fmt"
	"os"

	"github.com/arturoeanton/go-xmltok/dom"
	"github.com/arturoeanton/go-xmltok/query"
	"github.com/spf13/cobra"
)

var canonCmd = &cobra.Command{
	Use:   "canon [file]",
	Short: "Print the canonical serialisation of an XML document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := openInput(args)
		if err != nil {
			return err
		}
		defer r.Close()

		doc, err := dom.Parse(r)
		if err != nil {
			return err
		}
		if doc.IsError() {
			return fmt.Errorf("%s (line %d, column %d)", doc.ErrorMessage(), doc.Err().Line, doc.Err().Column)
		}

		om := query.ToOrderedMap(doc.Root())
		os.Stdout.Write(query.Canonicalize(om))
		fmt.Fprintln(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(canonCmd)
}
