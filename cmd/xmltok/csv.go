package xmltok

import (
	"fmt"
	"os"

	"github.com/arturoeanton/go-xmltok/dom"
	"github.com/arturoeanton/go-xmltok/query"
	"github.com/spf13/cobra"
)

var csvRowPath string

var csvCmd = &cobra.Command{
	Use:   "csv [file]",
	Short: "Convert the rows matched by --path to CSV",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if csvRowPath == "" {
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
		matches := query.QueryAll(om, csvRowPath)
		rows := make([]*query.OrderedMap, 0, len(matches))
		for _, m := range matches {
			if row, ok := m.(*query.OrderedMap); ok {
				rows = append(rows, row)
			}
		}
		return query.ToCSV(os.Stdout, rows)
	},
}

func init() {
	rootCmd.AddCommand(csvCmd)
	csvCmd.Flags().StringVar(&csvRowPath, "path", "", "query path selecting the rows to export")
}
