package lexer

import (
	"fmt"

	"github.com/toyc-lang/toyc/internal/checker/diag"
	"github.com/toyc-lang/toyc/internal/checker/token"
)

type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char

	line int // current line number (1-indexed)

	diags     []diag.Diagnostic
	truncated bool
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

// Tokenize materializes the whole token stream. The returned slice always
// ends with exactly one EOF token, whatever errors were encountered along
// the way.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.TokenEOF {
			return tokens
		}
	}
}

// Diagnostics returns the lexical errors recorded while scanning.
func (l *Lexer) Diagnostics() []diag.Diagnostic {
	return l.diags
}

// Truncated reports whether scanning stopped early because of an
// unterminated block comment. Tokens cannot be trusted past that point.
func (l *Lexer) Truncated() bool {
	return l.truncated
}

// readChar advances the lexer's position and updates the current character.
// It handles EOF and tracks line numbers.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // ASCII NULL (EOF)
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
	}
}

// Returns the next character without consuming it.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() token.Token {
	if l.truncated {
		return l.eofToken()
	}

	l.skipWhitespace()

	startLine := l.line

	switch l.ch {
	case '/':
		if l.peekChar() == '/' {
			l.readLineComment()
			return l.NextToken()
		}
		if l.peekChar() == '*' {
			if !l.readBlockComment(startLine) {
				return l.eofToken()
			}
			return l.NextToken()
		}
		l.readChar()
		return l.newToken(token.TokenSlash, "/", startLine)
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.TokenEq, "==", startLine)
		}
		l.readChar()
		return l.newToken(token.TokenAssign, "=", startLine)
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.TokenNotEq, "!=", startLine)
		}
		l.readChar()
		return l.newToken(token.TokenBang, "!", startLine)
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.TokenLe, "<=", startLine)
		}
		l.readChar()
		return l.newToken(token.TokenLt, "<", startLine)
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			l.readChar()
			return l.newToken(token.TokenGe, ">=", startLine)
		}
		l.readChar()
		return l.newToken(token.TokenGt, ">", startLine)
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			l.readChar()
			return l.newToken(token.TokenAnd, "&&", startLine)
		}
		// no bitwise operators in the grammar
		l.addDiag(startLine, "malformed operator '&': expected '&&'")
		l.readChar()
		return l.newToken(token.TokenIllegal, "&", startLine)
	case '|':
		if l.peekChar() == '|' {
			l.readChar()
			l.readChar()
			return l.newToken(token.TokenOr, "||", startLine)
		}
		l.addDiag(startLine, "malformed operator '|': expected '||'")
		l.readChar()
		return l.newToken(token.TokenIllegal, "|", startLine)
	case '(':
		l.readChar()
		return l.newToken(token.TokenLParen, "(", startLine)
	case ')':
		l.readChar()
		return l.newToken(token.TokenRParen, ")", startLine)
	case '{':
		l.readChar()
		return l.newToken(token.TokenLBrace, "{", startLine)
	case '}':
		l.readChar()
		return l.newToken(token.TokenRBrace, "}", startLine)
	case ';':
		l.readChar()
		return l.newToken(token.TokenSemicolon, ";", startLine)
	case ',':
		l.readChar()
		return l.newToken(token.TokenComma, ",", startLine)
	case '+':
		l.readChar()
		return l.newToken(token.TokenPlus, "+", startLine)
	case '-':
		l.readChar()
		return l.newToken(token.TokenMinus, "-", startLine)
	case '*':
		l.readChar()
		return l.newToken(token.TokenAsterisk, "*", startLine)
	case '%':
		l.readChar()
		return l.newToken(token.TokenPercent, "%", startLine)
	case 0:
		return l.eofToken()
	default:
		if isLetter(l.ch) {
			ident := l.readIdentifier()
			return l.newToken(lookupIdent(ident), ident, startLine)
		}
		if isDigit(l.ch) {
			return l.newToken(token.TokenNumber, l.readNumber(), startLine)
		}
		l.addDiag(startLine, "unexpected character '%c'", l.ch)
		ch := l.ch
		l.readChar()
		return l.newToken(token.TokenIllegal, string(ch), startLine)
	}
}

func (l *Lexer) newToken(tokenType token.TokenType, literal string, line int) token.Token {
	return token.Token{Type: tokenType, Literal: literal, Line: line}
}

func (l *Lexer) eofToken() token.Token {
	return token.Token{Type: token.TokenEOF, Literal: "", Line: l.line}
}

func (l *Lexer) addDiag(line int, format string, args ...any) {
	l.diags = append(l.diags, diag.Diagnostic{Line: line, Message: fmt.Sprintf(format, args...)})
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

func (l *Lexer) readLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// readBlockComment consumes a block comment. It returns false when the
// input ends before the closing "*/": a lexical diagnostic is recorded at
// the comment's opening line and scanning stops, since no later token
// boundary can be trusted.
func (l *Lexer) readBlockComment(startLine int) bool {
	l.readChar() // consume '/'
	l.readChar() // consume '*'

	for {
		if l.ch == 0 {
			l.addDiag(startLine, "unterminated comment")
			l.truncated = true
			return false
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return true
		}
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// keywords maps identifier strings to their corresponding token types.
var keywords = map[string]token.TokenType{
	"int":      token.TokenInt,
	"void":     token.TokenVoid,
	"if":       token.TokenIf,
	"else":     token.TokenElse,
	"while":    token.TokenWhile,
	"break":    token.TokenBreak,
	"continue": token.TokenContinue,
	"return":   token.TokenReturn,
}

// lookupIdent checks if an identifier is a keyword, returning the keyword's
// token type or token.TokenIdent if it's not a keyword.
func lookupIdent(ident string) token.TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return token.TokenIdent
}
