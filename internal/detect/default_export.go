package detect

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

const (
	defaultExportMarker = "export default"
	// statementWindow bounds how much text after the marker is tokenized
	statementWindow = 256
)

// defaultExport is the head of an `export default ...` statement
type defaultExport struct {
	Modifiers []string `parser:"'export' 'default' @('async' | 'function' | 'class' | 'new')*"`
	Name      string   `parser:"@Ident"`
}

var exportLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`},
	{Name: "Ident", Pattern: `[a-zA-Z_$][a-zA-Z0-9_$]*`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Other", Pattern: `\S`},
})

var exportParser = participle.MustBuild[defaultExport](
	participle.Lexer(exportLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// HasClientDefaultExport reports whether content default-exports an
// identifier that looks like an HTTP client
func HasClientDefaultExport(content string) bool {
	for _, name := range defaultExportNames(content) {
		if IsClientLikeName(name) {
			return true
		}
	}
	return false
}

// defaultExportNames returns the identifier of every parsable
// `export default` statement in content, in order
func defaultExportNames(content string) []string {
	var names []string
	offset := 0
	for {
		idx := strings.Index(content[offset:], defaultExportMarker)
		if idx < 0 {
			return names
		}
		start := offset + idx
		end := start + statementWindow
		if end > len(content) {
			end = len(content)
		}

		stmt, err := exportParser.ParseString("", content[start:end], participle.AllowTrailing(true))
		if err == nil && stmt.Name != "" {
			names = append(names, stmt.Name)
		}
		offset = start + len(defaultExportMarker)
	}
}
