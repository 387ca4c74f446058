// Package checklist verifies that the widget page and stylesheet carry the
// elements and rules the widget relies on.
package checklist

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

const (
	KindHTML = "html"
	KindCSS  = "css"
)

//go:embed rules.yaml
var defaultRules []byte

type HTMLRule struct {
	Name         string   `yaml:"name"`
	Selectors    []string `yaml:"selectors"`
	TextContains string   `yaml:"textContains"`
	Message      string   `yaml:"message"`
}

type CSSRule struct {
	Name     string `yaml:"name"`
	Selector string `yaml:"selector"`
	Pattern  string `yaml:"pattern"`
	Message  string `yaml:"message"`

	re *regexp.Regexp
}

type Rules struct {
	HTML []HTMLRule `yaml:"html"`
	CSS  []CSSRule  `yaml:"css"`
}

type Result struct {
	Name    string
	Kind    string
	Passed  bool
	Message string
}

// Report holds one result per rule, in rule order.
type Report struct {
	Results []Result
}

// Passed reports whether every rule passed.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Err aggregates every failed rule, or returns nil.
func (r Report) Err() error {
	var result *multierror.Error
	for _, res := range r.Results {
		if !res.Passed {
			result = multierror.Append(result, fmt.Errorf("%s: %s", res.Name, res.Message))
		}
	}
	return result.ErrorOrNil()
}

// DefaultRules returns the built-in rule set.
func DefaultRules() (Rules, error) {
	return ParseRules(defaultRules)
}

// ParseRules decodes a YAML rule set and compiles its CSS patterns.
func ParseRules(raw []byte) (Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(raw, &rules); err != nil {
		return Rules{}, fmt.Errorf("decode rules: %w", err)
	}

	var result *multierror.Error
	for i := range rules.HTML {
		if len(rules.HTML[i].Selectors) == 0 {
			result = multierror.Append(result, fmt.Errorf("html rule %q has no selectors", rules.HTML[i].Name))
		}
	}
	for i := range rules.CSS {
		r := &rules.CSS[i]
		re, err := regexp.Compile(regexp.QuoteMeta(r.Selector) + `\s*\{[^}]*` + r.Pattern + `[^}]*\}`)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("css rule %q: %w", r.Name, err))
			continue
		}
		r.re = re
	}

	if err := result.ErrorOrNil(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// Run checks html and css against every rule. It never stops at the first failure.
func (rs Rules) Run(html, css []byte) (Report, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return Report{}, fmt.Errorf("parse html: %w", err)
	}

	report := Report{Results: make([]Result, 0, len(rs.HTML)+len(rs.CSS))}
	for _, r := range rs.HTML {
		report.Results = append(report.Results, Result{
			Name:    r.Name,
			Kind:    KindHTML,
			Passed:  r.check(doc),
			Message: r.Message,
		})
	}
	for _, r := range rs.CSS {
		if r.re == nil {
			return Report{}, errors.New("css rules must be loaded with ParseRules")
		}
		report.Results = append(report.Results, Result{
			Name:    r.Name,
			Kind:    KindCSS,
			Passed:  r.re.Match(css),
			Message: r.Message,
		})
	}
	return report, nil
}

func (r HTMLRule) check(doc *goquery.Document) bool {
	want := strings.ToLower(r.TextContains)
	for _, sel := range r.Selectors {
		found := doc.Find(sel).FilterFunction(func(_ int, s *goquery.Selection) bool {
			return want == "" || strings.Contains(strings.ToLower(s.Text()), want)
		})
		if found.Length() > 0 {
			return true
		}
	}
	return false
}
