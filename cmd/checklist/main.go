// Command checklist checks the widget markup and stylesheet for the elements
// and rules the widget relies on. Without flags it checks the embedded page.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/onja-org/w2-scss-lab/internal/checklist"
	"github.com/onja-org/w2-scss-lab/web"
)

func main() {
	htmlPath := flag.String("html", "", "path to an HTML page (defaults to the embedded page)")
	cssPath := flag.String("css", "", "path to a stylesheet (defaults to the embedded style.css)")
	rulesPath := flag.String("rules", "", "path to a YAML rule set (defaults to the built-in rules)")
	flag.Parse()

	if err := run(*htmlPath, *cssPath, *rulesPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(htmlPath, cssPath, rulesPath string) error {
	rules, err := loadRules(rulesPath)
	if err != nil {
		return err
	}

	html, err := loadHTML(htmlPath)
	if err != nil {
		return err
	}

	css, err := loadCSS(cssPath)
	if err != nil {
		return err
	}

	report, err := rules.Run(html, css)
	if err != nil {
		return err
	}

	for _, res := range report.Results {
		mark := "ok  "
		if !res.Passed {
			mark = "FAIL"
		}
		fmt.Printf("%s [%s] %s\n", mark, res.Kind, res.Name)
	}

	return report.Err()
}

func loadRules(path string) (checklist.Rules, error) {
	if path == "" {
		return checklist.DefaultRules()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return checklist.Rules{}, fmt.Errorf("read rules: %w", err)
	}
	return checklist.ParseRules(raw)
}

func loadHTML(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	var buf bytes.Buffer
	if err := web.RenderIndex(&buf, web.PageData{}); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

func loadCSS(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return web.Stylesheet()
}
