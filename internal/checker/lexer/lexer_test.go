package lexer

import (
	"testing"

	"github.com/toyc-lang/toyc/internal/checker/token"
)

// mustTokenize scans source and checks the stream ends with exactly one
// EOF token, which every input must produce.
func mustTokenize(t *testing.T, source string) []token.Token {
	t.Helper()
	tokens := New(source).Tokenize()
	if len(tokens) == 0 {
		t.Fatal("expected at least one token (EOF)")
	}
	for i, tok := range tokens {
		if tok.Type == token.TokenEOF && i != len(tokens)-1 {
			t.Fatalf("EOF token at index %d, before end of stream", i)
		}
	}
	if last := tokens[len(tokens)-1]; last.Type != token.TokenEOF {
		t.Fatalf("last token is %s, not EOF", last.Type)
	}
	return tokens
}

func TestEmptyInput(t *testing.T) {
	tokens := mustTokenize(t, "")
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token (EOF), got %d", len(tokens))
	}
	if tokens[0].Line != 1 {
		t.Errorf("EOF line expected=1, got=%d", tokens[0].Line)
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		keyword  string
		expected token.TokenType
	}{
		{"int", token.TokenInt},
		{"void", token.TokenVoid},
		{"if", token.TokenIf},
		{"else", token.TokenElse},
		{"while", token.TokenWhile},
		{"break", token.TokenBreak},
		{"continue", token.TokenContinue},
		{"return", token.TokenReturn},
	}
	for _, tt := range tests {
		tokens := mustTokenize(t, tt.keyword)
		if len(tokens) != 2 {
			t.Fatalf("%q: expected keyword + EOF, got %d tokens", tt.keyword, len(tokens))
		}
		if tokens[0].Type != tt.expected {
			t.Errorf("%q: expected type %s, got %s", tt.keyword, tt.expected, tokens[0].Type)
		}
		if tokens[0].Literal != tt.keyword {
			t.Errorf("%q: expected literal %q, got %q", tt.keyword, tt.keyword, tokens[0].Literal)
		}
	}
}

func TestNextTokenProgram(t *testing.T) {
	input := `int main() {
	int x = 10 % 3;
	if (x >= 1 && x != 0) {
		x = x - 1;
	}
	return !x;
}`

	tests := []struct {
		expectedType    token.TokenType
		expectedLiteral string
	}{
		{token.TokenInt, "int"},
		{token.TokenIdent, "main"},
		{token.TokenLParen, "("},
		{token.TokenRParen, ")"},
		{token.TokenLBrace, "{"},
		{token.TokenInt, "int"},
		{token.TokenIdent, "x"},
		{token.TokenAssign, "="},
		{token.TokenNumber, "10"},
		{token.TokenPercent, "%"},
		{token.TokenNumber, "3"},
		{token.TokenSemicolon, ";"},
		{token.TokenIf, "if"},
		{token.TokenLParen, "("},
		{token.TokenIdent, "x"},
		{token.TokenGe, ">="},
		{token.TokenNumber, "1"},
		{token.TokenAnd, "&&"},
		{token.TokenIdent, "x"},
		{token.TokenNotEq, "!="},
		{token.TokenNumber, "0"},
		{token.TokenRParen, ")"},
		{token.TokenLBrace, "{"},
		{token.TokenIdent, "x"},
		{token.TokenAssign, "="},
		{token.TokenIdent, "x"},
		{token.TokenMinus, "-"},
		{token.TokenNumber, "1"},
		{token.TokenSemicolon, ";"},
		{token.TokenRBrace, "}"},
		{token.TokenReturn, "return"},
		{token.TokenBang, "!"},
		{token.TokenIdent, "x"},
		{token.TokenSemicolon, ";"},
		{token.TokenRBrace, "}"},
		{token.TokenEOF, ""},
	}

	lx := New(input)
	for i, tt := range tests {
		tok := lx.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d]: expected type %s, got %s (%q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d]: expected literal %q, got %q", i, tt.expectedLiteral, tok.Literal)
		}
	}
	if diags := lx.Diagnostics(); len(diags) != 0 {
		t.Errorf("unexpected lexical diagnostics: %v", diags)
	}
}

func TestOperatorGreediness(t *testing.T) {
	input := "== = != ! <= < >= > && ||"
	expected := []token.TokenType{
		token.TokenEq, token.TokenAssign,
		token.TokenNotEq, token.TokenBang,
		token.TokenLe, token.TokenLt,
		token.TokenGe, token.TokenGt,
		token.TokenAnd, token.TokenOr,
		token.TokenEOF,
	}
	tokens := mustTokenize(t, input)
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, want := range expected {
		if tokens[i].Type != want {
			t.Errorf("tokens[%d]: expected %s, got %s", i, want, tokens[i].Type)
		}
	}
}

func TestLineNumbers(t *testing.T) {
	input := "int\nx\n\n42"
	tokens := mustTokenize(t, input)

	wantLines := []int{1, 2, 4, 4} // int, x, 42, EOF
	if len(tokens) != len(wantLines) {
		t.Fatalf("expected %d tokens, got %d", len(wantLines), len(tokens))
	}
	for i, want := range wantLines {
		if tokens[i].Line != want {
			t.Errorf("tokens[%d] (%s): expected line %d, got %d", i, tokens[i].Type, want, tokens[i].Line)
		}
	}
}

func TestCommentsSkipped(t *testing.T) {
	input := `// leading comment
int x; // trailing comment
/* block
   spanning lines */ int y;`

	tokens := mustTokenize(t, input)
	expected := []struct {
		typ  token.TokenType
		line int
	}{
		{token.TokenInt, 2},
		{token.TokenIdent, 2},
		{token.TokenSemicolon, 2},
		{token.TokenInt, 4},
		{token.TokenIdent, 4},
		{token.TokenSemicolon, 4},
		{token.TokenEOF, 4},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %v", len(expected), len(tokens), tokens)
	}
	for i, want := range expected {
		if tokens[i].Type != want.typ || tokens[i].Line != want.line {
			t.Errorf("tokens[%d]: expected %s at line %d, got %s at line %d",
				i, want.typ, want.line, tokens[i].Type, tokens[i].Line)
		}
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	input := "int f() {\n/* unterminated\nmore text"
	lx := New(input)
	tokens := lx.Tokenize()

	if last := tokens[len(tokens)-1]; last.Type != token.TokenEOF {
		t.Fatalf("stream must still end with EOF, got %s", last.Type)
	}
	if !lx.Truncated() {
		t.Error("Truncated() expected=true")
	}

	diags := lx.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
	if diags[0].Line != 2 {
		t.Errorf("diagnostic line expected=2 (comment opener), got=%d", diags[0].Line)
	}
	if diags[0].Message != "unterminated comment" {
		t.Errorf("unexpected message %q", diags[0].Message)
	}

	// no tokens after the comment opener
	for _, tok := range tokens[:len(tokens)-1] {
		if tok.Line > 1 {
			t.Errorf("token %s scanned past the unterminated comment (line %d)", tok.Type, tok.Line)
		}
	}
}

func TestLoneAmpersandAndPipe(t *testing.T) {
	lx := New("a & b\nc | d")
	tokens := lx.Tokenize()

	diags := lx.Diagnostics()
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d: %v", len(diags), diags)
	}
	if diags[0].Line != 1 || diags[1].Line != 2 {
		t.Errorf("diagnostic lines expected=[1 2], got=[%d %d]", diags[0].Line, diags[1].Line)
	}

	// the scanner must keep going: both identifiers around each bad
	// operator still tokenize
	var idents int
	for _, tok := range tokens {
		if tok.Type == token.TokenIdent {
			idents++
		}
	}
	if idents != 4 {
		t.Errorf("expected 4 identifiers, got %d", idents)
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	lx := New("int x = 1 @ 2;")
	tokens := lx.Tokenize()

	diags := lx.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
	if diags[0].Message != "unexpected character '@'" {
		t.Errorf("unexpected message %q", diags[0].Message)
	}

	// forward progress: the tokens after '@' must still appear
	if last := tokens[len(tokens)-2]; last.Type != token.TokenSemicolon {
		t.Errorf("expected trailing ';' token, got %s", last.Type)
	}
}

func TestIdentifiersAndNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected token.TokenType
		literal  string
	}{
		{"foo", token.TokenIdent, "foo"},
		{"_bar", token.TokenIdent, "_bar"},
		{"x1y2", token.TokenIdent, "x1y2"},
		{"intx", token.TokenIdent, "intx"}, // keyword prefix is not a keyword
		{"0", token.TokenNumber, "0"},
		{"007", token.TokenNumber, "007"},
		{"123456", token.TokenNumber, "123456"},
	}
	for _, tt := range tests {
		tokens := mustTokenize(t, tt.input)
		if tokens[0].Type != tt.expected || tokens[0].Literal != tt.literal {
			t.Errorf("%q: expected %s %q, got %s %q",
				tt.input, tt.expected, tt.literal, tokens[0].Type, tokens[0].Literal)
		}
	}
}
