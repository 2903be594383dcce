package xmltok

import (
	"fmt"
	"os"

	"github.com/arturoeanton/go-xmltok/dom"
	"github.com/arturoeanton/go-xmltok/query"
	"github.com/spf13/cobra"
)

var queryPath string

var queryCmd = &cobra.Command{
	Use:   "query [file]",
	Short: "Run a path query against an XML document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if queryPath == "" {
			return fmt.Errorf("--path is required")
		}
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
		for _, result := range query.QueryAll(om, queryPath) {
			s, err := query.ToJSON(result)
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, s)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)
	queryCmd.Flags().StringVar(&queryPath, "path", "", `query path, e.g. "item[@id=7]" or "//title"`)
}
