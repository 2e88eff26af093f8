package skin

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ManifestLexer tokenizes skin manifests:
//
//	# comment
//	skin "classic";
//	background "grass.png";
//	color "#145a32";
//	variant body left "body_l1.png" "body_l2.png";
var ManifestLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `(?:#|//)[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords
	{Name: "KwSkin", Pattern: `\bskin\b`},
	{Name: "KwBackground", Pattern: `\bbackground\b`},
	{Name: "KwColor", Pattern: `\bcolou?r\b`},
	{Name: "KwVariant", Pattern: `\bvariant\b`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Semicolon", Pattern: `;`},
})
