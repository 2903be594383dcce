// Package xmltok is the xmltok command-line tool: a thin cobra wrapper
// around the tokenizer, dom, and query packages for inspecting XML
// documents from a shell without writing any Go.
package xmltok

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xmltok",
	Short: "Stream, query, and validate XML documents",
	Long: `xmltok is a byte-level streaming XML tokenizer exposed as a
command-line tool: it converts a document to JSON or CSV, runs path
queries against it, canonicalises it, or checks it against a set of
validation rules.`,
}

// Execute runs the command tree, exiting with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openInput returns stdin when args is empty, or opens args[0].
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", args[0], err)
	}
	return f, nil
}
