// Package lexer turns Monkey source text into a stream of tokens.
//
// The lexer works on single bytes. Multi-byte encodings are not decoded:
// bytes outside ASCII become ILLEGAL tokens unless they appear inside a
// string literal, where they are copied through unchanged.
package lexer

import "monkey/interpreter-go/pkg/token"

// Lexer is a forward-only scanner over a source string.
type Lexer struct {
	input   string
	pos     int  // index of ch
	readPos int  // index of the byte after ch
	ch      byte // current byte, 0 at end of input
}

// New returns a lexer positioned at the first byte of input.
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// NextToken scans and returns the next token. Once the input is exhausted
// every call returns an EOF token.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	var tok token.Token
	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.New(token.EQ, "==")
		} else {
			tok = token.New(token.ASSIGN, "=")
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.New(token.NOT_EQ, "!=")
		} else {
			tok = token.New(token.BANG, "!")
		}
	case '+':
		tok = token.New(token.PLUS, "+")
	case '-':
		tok = token.New(token.MINUS, "-")
	case '*':
		tok = token.New(token.ASTERISK, "*")
	case '/':
		tok = token.New(token.SLASH, "/")
	case '<':
		tok = token.New(token.LT, "<")
	case '>':
		tok = token.New(token.GT, ">")
	case ',':
		tok = token.New(token.COMMA, ",")
	case ';':
		tok = token.New(token.SEMICOLON, ";")
	case ':':
		tok = token.New(token.COLON, ":")
	case '(':
		tok = token.New(token.LPAREN, "(")
	case ')':
		tok = token.New(token.RPAREN, ")")
	case '{':
		tok = token.New(token.LBRACE, "{")
	case '}':
		tok = token.New(token.RBRACE, "}")
	case '[':
		tok = token.New(token.LBRACKET, "[")
	case ']':
		tok = token.New(token.RBRACKET, "]")
	case '"':
		tok = token.New(token.STRING, l.readString())
	case 0:
		// readChar leaves ch at 0 past the end; a literal NUL inside the
		// input is illegal rather than a premature EOF.
		if l.pos >= len(l.input) {
			return token.New(token.EOF, "")
		}
		tok = token.New(token.ILLEGAL, string(l.ch))
	default:
		switch {
		case isLetter(l.ch):
			name := l.readIdentifier()
			return token.New(token.LookupIdent(name), name)
		case isDigit(l.ch):
			return token.New(token.INT, l.readNumber())
		default:
			tok = token.New(token.ILLEGAL, string(l.ch))
		}
	}
	l.readChar()
	return tok
}

// Tokenize scans the whole input, returning every token up to and
// including the first EOF.
func Tokenize(input string) []token.Token {
	l := New(input)
	var out []token.Token
	for {
		tok := l.NextToken()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	if l.readPos <= len(l.input) {
		l.readPos++
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readString consumes the body of a string literal. ch is the opening quote
// on entry and the closing quote (or end of input) on exit.
func (l *Lexer) readString() string {
	start := l.pos + 1
	for {
		l.readChar()
		if l.ch == '"' || l.pos >= len(l.input) {
			break
		}
	}
	end := l.pos
	if end > len(l.input) {
		end = len(l.input)
	}
	return l.input[start:end]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
