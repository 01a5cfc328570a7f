package template

import (
	"gopkg.in/yaml.v3"
)

// RuleFileName returns the rule file name for a template, e.g. "human.yaml".
func RuleFileName(name string) string {
	return name + ".yaml"
}

// ExampleFileName returns the example data file name for a template,
// e.g. "human.sdrf.tsv".
func ExampleFileName(name string) string {
	return name + ".sdrf.tsv"
}

// parseRuleFile decodes a rule file. Column-definition content beyond the
// fields the resolver needs is tolerated and ignored.
func parseRuleFile(data []byte) (RuleFile, error) {
	var rf RuleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return RuleFile{}, err
	}
	return rf, nil
}
