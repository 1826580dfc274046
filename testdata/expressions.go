// Package testdata provides test suites shared by the package tests.
package testdata

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed expressions.yaml
var expressionsYAML []byte

// ExpressionGroup is a named group of expression test cases.
type ExpressionGroup struct {
	Name  string           `yaml:"name"`
	Tests []ExpressionTest `yaml:"tests"`
}

// ExpressionTest is an expression with its expected result in N-Triples syntax,
// "null" for the null literal. If Invalid is set, evaluation must fail.
type ExpressionTest struct {
	Expression string `yaml:"expression"`
	Result     string `yaml:"result"`
	Invalid    bool   `yaml:"invalid"`
}

// Expressions returns the expression test suite.
func Expressions() ([]ExpressionGroup, error) {
	var groups []ExpressionGroup
	if err := yaml.Unmarshal(expressionsYAML, &groups); err != nil {
		return nil, fmt.Errorf("decode expression tests: %w", err)
	}
	return groups, nil
}
