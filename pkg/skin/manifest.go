package skin

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Manifest is a parsed skin file.
type Manifest struct {
	Decls []*Decl `@@*`
}

// Decl is one statement of a manifest.
type Decl struct {
	Pos lexer.Position

	Name       *string      `  KwSkin @String Semicolon`
	Background *string      `| KwBackground @String Semicolon`
	Color      *string      `| KwColor @String Semicolon`
	Variant    *VariantDecl `| @@`
}

// VariantDecl registers image files for one shape tag, in order.
// Example: variant body left "a.png" "b.png";
type VariantDecl struct {
	Pos lexer.Position

	Attribute string   `KwVariant @Ident`
	Bend      string   `@Ident`
	Files     []string `@String+ Semicolon`
}

// SkinName returns the last declared name, or "".
func (m *Manifest) SkinName() string {
	name := ""
	for _, d := range m.Decls {
		if d.Name != nil {
			name = *d.Name
		}
	}
	return name
}

// Variants returns every variant declaration in file order.
func (m *Manifest) Variants() []*VariantDecl {
	var out []*VariantDecl
	for _, d := range m.Decls {
		if d.Variant != nil {
			out = append(out, d.Variant)
		}
	}
	return out
}

// Parser parses skin manifests.
type Parser struct {
	parser *participle.Parser[Manifest]
}

// NewParser builds the manifest grammar.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Manifest](
		participle.Lexer(ManifestLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse reads a manifest. name is used in error positions.
func (p *Parser) Parse(name string, r io.Reader) (*Manifest, error) {
	m, err := p.parser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return m, nil
}

// ParseString parses a manifest held in memory.
func (p *Parser) ParseString(name, input string) (*Manifest, error) {
	m, err := p.parser.ParseString(name, input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return m, nil
}

// ParseFile parses the manifest at path.
func (p *Parser) ParseFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer f.Close()

	return p.Parse(path, f)
}
