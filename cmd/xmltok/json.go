package xmltok

import (
	"fmt"
	"os"

	"github.com/arturoeanton/go-xmltok/dom"
	"github.com/arturoeanton/go-xmltok/query"
	"github.com/spf13/cobra"
)

var jsonCmd = &cobra.Command{
	Use:   "json [file]",
	Short: "Convert an XML document to JSON",
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

		out, err := query.ToJSON(query.ToOrderedMap(doc.Root()))
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jsonCmd)
}
