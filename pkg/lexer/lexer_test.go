package lexer

import (
	"reflect"
	"strings"
	"testing"

	"monkey/interpreter-go/pkg/token"
)

func TestTokenizeLetStatement(t *testing.T) {
	got := Tokenize("let five = 5;")
	want := []token.Token{
		{Kind: token.LET, Literal: "let"},
		{Kind: token.IDENT, Literal: "five"},
		{Kind: token.ASSIGN, Literal: "="},
		{Kind: token.INT, Literal: "5"},
		{Kind: token.SEMICOLON, Literal: ";"},
		{Kind: token.EOF, Literal: ""},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens:\n got %v\nwant %v", got, want)
	}
}

func TestNextTokenCoversEveryKind(t *testing.T) {
	input := `let add = fn(x, y) {
  x + y;
};
!-/*5;
5 < 10 > 5;
if (5 < 10) {
	return true;
} else {
	return false;
}
10 == 10;
10 != 9;
"foobar"
"foo bar"
[1, 2];
{"foo": "bar"}
snake_case
`
	tests := []struct {
		kind    token.Kind
		literal string
	}{
		{token.LET, "let"}, {token.IDENT, "add"}, {token.ASSIGN, "="}, {token.FUNCTION, "fn"},
		{token.LPAREN, "("}, {token.IDENT, "x"}, {token.COMMA, ","}, {token.IDENT, "y"},
		{token.RPAREN, ")"}, {token.LBRACE, "{"}, {token.IDENT, "x"}, {token.PLUS, "+"},
		{token.IDENT, "y"}, {token.SEMICOLON, ";"}, {token.RBRACE, "}"}, {token.SEMICOLON, ";"},
		{token.BANG, "!"}, {token.MINUS, "-"}, {token.SLASH, "/"}, {token.ASTERISK, "*"},
		{token.INT, "5"}, {token.SEMICOLON, ";"},
		{token.INT, "5"}, {token.LT, "<"}, {token.INT, "10"}, {token.GT, ">"}, {token.INT, "5"},
		{token.SEMICOLON, ";"},
		{token.IF, "if"}, {token.LPAREN, "("}, {token.INT, "5"}, {token.LT, "<"}, {token.INT, "10"},
		{token.RPAREN, ")"}, {token.LBRACE, "{"},
		{token.RETURN, "return"}, {token.TRUE, "true"}, {token.SEMICOLON, ";"},
		{token.RBRACE, "}"}, {token.ELSE, "else"}, {token.LBRACE, "{"},
		{token.RETURN, "return"}, {token.FALSE, "false"}, {token.SEMICOLON, ";"},
		{token.RBRACE, "}"},
		{token.INT, "10"}, {token.EQ, "=="}, {token.INT, "10"}, {token.SEMICOLON, ";"},
		{token.INT, "10"}, {token.NOT_EQ, "!="}, {token.INT, "9"}, {token.SEMICOLON, ";"},
		{token.STRING, "foobar"}, {token.STRING, "foo bar"},
		{token.LBRACKET, "["}, {token.INT, "1"}, {token.COMMA, ","}, {token.INT, "2"},
		{token.RBRACKET, "]"}, {token.SEMICOLON, ";"},
		{token.LBRACE, "{"}, {token.STRING, "foo"}, {token.COLON, ":"}, {token.STRING, "bar"},
		{token.RBRACE, "}"},
		{token.IDENT, "snake_case"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tc := range tests {
		tok := l.NextToken()
		if tok.Kind != tc.kind || tok.Literal != tc.literal {
			t.Fatalf("token %d: expected %s %q, got %s %q", i, tc.kind, tc.literal, tok.Kind, tok.Literal)
		}
	}
}

func TestEOFRepeatsForever(t *testing.T) {
	l := New("x")
	if tok := l.NextToken(); tok.Kind != token.IDENT {
		t.Fatalf("expected identifier, got %v", tok)
	}
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Kind != token.EOF {
			t.Fatalf("call %d: expected EOF, got %v", i, tok)
		}
	}
}

func TestUnterminatedStringClosesAtEndOfInput(t *testing.T) {
	got := Tokenize(`"abc`)
	want := []token.Token{{Kind: token.STRING, Literal: "abc"}, {Kind: token.EOF}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens %v", got)
	}
	got = Tokenize(`""`)
	want = []token.Token{{Kind: token.STRING, Literal: ""}, {Kind: token.EOF}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens for empty string %v", got)
	}
}

func TestIllegalCharacters(t *testing.T) {
	got := Tokenize("a @ 1 # \x00")
	kinds := make([]token.Kind, len(got))
	for i, tok := range got {
		kinds[i] = tok.Kind
	}
	want := []token.Kind{token.IDENT, token.ILLEGAL, token.INT, token.ILLEGAL, token.ILLEGAL, token.EOF}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("expected kinds %v, got %v", want, kinds)
	}
	if got[1].Literal != "@" {
		t.Fatalf("expected illegal literal @, got %q", got[1].Literal)
	}
}

func TestIdentifiersStopAtDigits(t *testing.T) {
	got := Tokenize("abc123")
	if len(got) != 3 || got[0].Literal != "abc" || got[1].Kind != token.INT || got[1].Literal != "123" {
		t.Fatalf("unexpected tokens %v", got)
	}
}

func TestLiteralsReassembleInput(t *testing.T) {
	input := `let f = fn(a, b) { a * (b - 1) }; f(2, 3) != 4 == !true; ["x", {1: y}]`
	var parts []string
	for _, tok := range Tokenize(input) {
		switch tok.Kind {
		case token.EOF:
		case token.STRING:
			parts = append(parts, `"`+tok.Literal+`"`)
		default:
			parts = append(parts, tok.Literal)
		}
	}
	compact := strings.Join(parts, "")
	if want := strings.ReplaceAll(input, " ", ""); compact != want {
		t.Fatalf("expected %q, got %q", want, compact)
	}
}
