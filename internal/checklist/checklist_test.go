package checklist_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onja-org/w2-scss-lab/internal/checklist"
	"github.com/onja-org/w2-scss-lab/internal/models"
	"github.com/onja-org/w2-scss-lab/web"
)

func renderPage(t *testing.T, data web.PageData) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, web.RenderIndex(&buf, data))
	return buf.Bytes()
}

func TestDefaultRules_EmbeddedAssetsPass(t *testing.T) {
	rules, err := checklist.DefaultRules()
	require.NoError(t, err)

	css, err := web.Stylesheet()
	require.NoError(t, err)

	pages := map[string]web.PageData{
		"empty":    {},
		"result":   {Query: "Toliara", Result: &models.ResultView{City: "Toliara", Country: "MG"}},
		"notFound": {Query: "Paris", Message: "City not found in our Madagascar data."},
	}

	for name, data := range pages {
		t.Run(name, func(t *testing.T) {
			report, err := rules.Run(renderPage(t, data), css)
			require.NoError(t, err)

			assert.NoError(t, report.Err())
			assert.True(t, report.Passed())
			assert.Len(t, report.Results, len(rules.HTML)+len(rules.CSS))
		})
	}
}

func TestRun_ReportsEveryFailure(t *testing.T) {
	rules, err := checklist.DefaultRules()
	require.NoError(t, err)

	html := []byte(`<html><body><h1>Cities</h1><button>Go</button></body></html>`)
	css := []byte(`body { background: red; }`)

	report, err := rules.Run(html, css)
	require.NoError(t, err)

	assert.False(t, report.Passed())

	failed := map[string]bool{}
	for _, r := range report.Results {
		if !r.Passed {
			failed[r.Name] = true
		}
	}
	assert.True(t, failed["heading"])
	assert.True(t, failed["weather-button"])
	assert.True(t, failed["suggestions-list"])
	assert.True(t, failed["body-flex"])
	assert.False(t, failed["body-background"])

	require.Error(t, report.Err())
	assert.Contains(t, report.Err().Error(), `heading: Missing or incorrect <h1> with "Weather" in it.`)
	assert.Contains(t, report.Err().Error(), "container-shadow: .container missing box-shadow for card effect.")
}

func TestRun_CSSDeclarationMustBeInsideSelectorBlock(t *testing.T) {
	rules, err := checklist.ParseRules([]byte(`
css:
  - {name: body-flex, selector: body, pattern: 'display:\s*flex', message: no flex}
`))
	require.NoError(t, err)

	report, err := rules.Run([]byte(`<p></p>`), []byte("body { color: red; }\n.row { display: flex; }"))
	require.NoError(t, err)
	assert.False(t, report.Passed())

	report, err = rules.Run([]byte(`<p></p>`), []byte("body {\n  display:flex;\n}"))
	require.NoError(t, err)
	assert.True(t, report.Passed())
}

func TestRun_SuggestionsListByClassOrID(t *testing.T) {
	rules, err := checklist.ParseRules([]byte(`
html:
  - {name: suggestions-list, selectors: ["ul.suggestions", "ul#suggestions"], message: missing}
`))
	require.NoError(t, err)

	for _, html := range []string{`<ul class="suggestions"></ul>`, `<ul id="suggestions"></ul>`} {
		report, err := rules.Run([]byte(html), nil)
		require.NoError(t, err)
		assert.True(t, report.Passed(), html)
	}

	report, err := rules.Run([]byte(`<ol id="suggestions"></ol>`), nil)
	require.NoError(t, err)
	assert.False(t, report.Passed())
}

func TestParseRules_Invalid(t *testing.T) {
	_, err := checklist.ParseRules([]byte(`
html:
  - {name: empty, message: nothing to select}
css:
  - {name: broken, selector: body, pattern: '(', message: bad regex}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `html rule "empty" has no selectors`)
	assert.Contains(t, err.Error(), `css rule "broken"`)
}

func TestRun_UnparsedCSSRule(t *testing.T) {
	rules := checklist.Rules{CSS: []checklist.CSSRule{{Name: "raw", Selector: "body", Pattern: "margin"}}}

	_, err := rules.Run([]byte(`<p></p>`), nil)
	assert.Error(t, err)
}
