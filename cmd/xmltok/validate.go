package xmltok

import (
	"fmt"
	"os"

	"github.com/arturoeanton/go-xmltok/dom"
	"github.com/arturoeanton/go-xmltok/query"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var rulesPath string

// ruleFile is the on-disk shape of a rule set: a thin, human-writable
// layer over query.Rule so a rule set can live next to the documents it
// checks instead of being compiled into the binary.
type ruleFile struct {
	Rules []struct {
		Path     string   `yaml:"path"`
		Required bool     `yaml:"required"`
		Type     string   `yaml:"type"`
		Min      *float64 `yaml:"min"`
		Max      *float64 `yaml:"max"`
		Regex    string   `yaml:"regex"`
		Enum     []string `yaml:"enum"`
	} `yaml:"rules"`
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate an XML document against a YAML rule set",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if rulesPath == "" {
			return fmt.Errorf("--rules is required")
		}
		raw, err := os.ReadFile(rulesPath)
		if err != nil {
			return fmt.Errorf("read rules: %w", err)
		}
		var rf ruleFile
		if err := yaml.Unmarshal(raw, &rf); err != nil {
			return fmt.Errorf("parse rules: %w", err)
		}

		rules := make([]query.Rule, len(rf.Rules))
		for i, r := range rf.Rules {
			rules[i] = query.Rule{
				Path:     r.Path,
				Required: r.Required,
				Type:     r.Type,
				Min:      r.Min,
				Max:      r.Max,
				Regex:    r.Regex,
				Enum:     r.Enum,
			}
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
		problems := query.Validate(om, rules)
		for _, p := range problems {
			fmt.Fprintln(os.Stdout, p)
		}
		if len(problems) > 0 {
			return fmt.Errorf("%d validation error(s)", len(problems))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().StringVar(&rulesPath, "rules", "", "path to a YAML rule set")
}
