package token

type TokenType string

const (
	// Punctuation
	TokenLParen    TokenType = "LPAREN"    // (
	TokenRParen    TokenType = "RPAREN"    // )
	TokenLBrace    TokenType = "LBRACE"    // {
	TokenRBrace    TokenType = "RBRACE"    // }
	TokenSemicolon TokenType = "SEMICOLON" // ;
	TokenComma     TokenType = "COMMA"     // ,

	// Operators
	TokenAssign   TokenType = "ASSIGN"   // =
	TokenPlus     TokenType = "PLUS"     // +
	TokenMinus    TokenType = "MINUS"    // -
	TokenAsterisk TokenType = "ASTERISK" // *
	TokenSlash    TokenType = "SLASH"    // /
	TokenPercent  TokenType = "PERCENT"  // %
	TokenEq       TokenType = "EQ"       // ==
	TokenNotEq    TokenType = "NOT_EQ"   // !=
	TokenLt       TokenType = "LT"       // <
	TokenLe       TokenType = "LE"       // <=
	TokenGt       TokenType = "GT"       // >
	TokenGe       TokenType = "GE"       // >=
	TokenAnd      TokenType = "AND"      // &&
	TokenOr       TokenType = "OR"       // ||
	TokenBang     TokenType = "BANG"     // !

	// Keywords
	TokenInt      TokenType = "INT"      // int
	TokenVoid     TokenType = "VOID"     // void
	TokenIf       TokenType = "IF"       // if
	TokenElse     TokenType = "ELSE"     // else
	TokenWhile    TokenType = "WHILE"    // while
	TokenBreak    TokenType = "BREAK"    // break
	TokenContinue TokenType = "CONTINUE" // continue
	TokenReturn   TokenType = "RETURN"   // return

	// Literals & Identifiers
	TokenNumber TokenType = "NUMBER" // 42
	TokenIdent  TokenType = "IDENT"  // Identifier (e.g. variable name)

	// Special
	TokenEOF     TokenType = "EOF"
	TokenIllegal TokenType = "ILLEGAL"
)

type Token struct {
	Type    TokenType
	Literal string
	Line    int
}

// IsTypeKeyword reports whether the token can open a function definition.
func (t Token) IsTypeKeyword() bool {
	return t.Type == TokenInt || t.Type == TokenVoid
}
