package query

import (
	"fmt"
	"regexp"
	"strconv"
)

// Rule describes one constraint checked against the value(s) at Path
// (evaluated with QueryAll against the document root).
type Rule struct {
	Path     string
	Required bool
	Type     string // "string", "number", "bool" ("" skips the check)
	Min      *float64
	Max      *float64
	Regex    string
	Enum     []string
}

// Validate runs every rule against root and returns one human-readable
// message per violation. An empty result means root satisfied every rule.
func Validate(root *OrderedMap, rules []Rule) []string {
	var problems []string
	for _, rule := range rules {
		matches := QueryAll(root, rule.Path)
		if len(matches) == 0 {
			if rule.Required {
				problems = append(problems, fmt.Sprintf("%s: required but missing", rule.Path))
			}
			continue
		}
		for _, v := range matches {
			problems = append(problems, checkValue(rule, v)...)
		}
	}
	return problems
}

func checkValue(rule Rule, v any) []string {
	var problems []string
	s, isString := v.(string)

	switch rule.Type {
	case "string":
		if !isString {
			problems = append(problems, fmt.Sprintf("%s: %v is not a string", rule.Path, v))
		}
	case "number":
		if _, ok := asFloat(v); !ok {
			problems = append(problems, fmt.Sprintf("%s: %v is not a number", rule.Path, v))
		}
	case "bool":
		if isString {
			if _, err := strconv.ParseBool(s); err != nil {
				problems = append(problems, fmt.Sprintf("%s: %v is not a bool", rule.Path, v))
			}
		}
	}

	if rule.Min != nil || rule.Max != nil {
		if f, ok := asFloat(v); ok {
			if rule.Min != nil && f < *rule.Min {
				problems = append(problems, fmt.Sprintf("%s: %v is below minimum %v", rule.Path, v, *rule.Min))
			}
			if rule.Max != nil && f > *rule.Max {
				problems = append(problems, fmt.Sprintf("%s: %v is above maximum %v", rule.Path, v, *rule.Max))
			}
		}
	}

	if rule.Regex != "" && isString {
		if re, err := regexp.Compile(rule.Regex); err == nil && !re.MatchString(s) {
			problems = append(problems, fmt.Sprintf("%s: %q does not match %s", rule.Path, s, rule.Regex))
		}
	}

	if len(rule.Enum) > 0 && isString {
		ok := false
		for _, allowed := range rule.Enum {
			if allowed == s {
				ok = true
				break
			}
		}
		if !ok {
			problems = append(problems, fmt.Sprintf("%s: %q is not one of %v", rule.Path, s, rule.Enum))
		}
	}

	return problems
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	}
	return 0, false
}
