package token

// Kind identifies the lexical category of a token.
type Kind string

const (
	ILLEGAL Kind = "ILLEGAL"
	EOF     Kind = "EOF"

	// Identifiers and literals
	IDENT  Kind = "IDENT"
	INT    Kind = "INT"
	STRING Kind = "STRING"

	// Operators
	ASSIGN   Kind = "="
	PLUS     Kind = "+"
	MINUS    Kind = "-"
	BANG     Kind = "!"
	ASTERISK Kind = "*"
	SLASH    Kind = "/"
	LT       Kind = "<"
	GT       Kind = ">"
	EQ       Kind = "=="
	NOT_EQ   Kind = "!="

	// Delimiters
	COMMA     Kind = ","
	SEMICOLON Kind = ";"
	COLON     Kind = ":"
	LPAREN    Kind = "("
	RPAREN    Kind = ")"
	LBRACE    Kind = "{"
	RBRACE    Kind = "}"
	LBRACKET  Kind = "["
	RBRACKET  Kind = "]"

	// Keywords
	FUNCTION Kind = "FUNCTION"
	LET      Kind = "LET"
	TRUE     Kind = "TRUE"
	FALSE    Kind = "FALSE"
	IF       Kind = "IF"
	ELSE     Kind = "ELSE"
	RETURN   Kind = "RETURN"
)

// Token pairs a kind with the exact source text it was scanned from.
// String tokens carry their contents without the surrounding quotes.
type Token struct {
	Kind    Kind
	Literal string
}

// New builds a token.
func New(kind Kind, literal string) Token {
	return Token{Kind: kind, Literal: literal}
}

var keywords = map[string]Kind{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent classifies a scanned name as a keyword or a plain identifier.
func LookupIdent(name string) Kind {
	if kind, ok := keywords[name]; ok {
		return kind
	}
	return IDENT
}

// IsKeyword reports whether the kind is one of the reserved words.
func (k Kind) IsKeyword() bool {
	switch k {
	case FUNCTION, LET, TRUE, FALSE, IF, ELSE, RETURN:
		return true
	default:
		return false
	}
}
