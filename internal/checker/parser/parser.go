package parser

import (
	"github.com/toyc-lang/toyc/internal/checker/diag"
	"github.com/toyc-lang/toyc/internal/checker/token"
)

// Options hold the policy knobs left open by the grammar's dialects.
type Options struct {
	// AllowBareExpressions tolerates a statement-position identifier that
	// is followed by neither '=' nor '(' by parsing a full expression
	// statement instead of rejecting it.
	AllowBareExpressions bool

	// AllowGlobals skips top-level `int name (= expr)? ;` declarations
	// instead of rejecting them.
	AllowGlobals bool
}

// Parser walks a materialized token stream against the ToyC grammar by
// recursive descent, one routine per production, with panic-mode recovery
// on grammar violations. It never rewinds: the cursor only advances.
type Parser struct {
	toks    []token.Token
	pos     int // index of the token after peekTok
	curTok  token.Token
	peekTok token.Token

	diags     *diag.Set
	loopDepth int // while-nesting counter for break/continue checks
	opts      Options
}

func New(toks []token.Token, opts Options) *Parser {
	if len(toks) == 0 {
		// a well-formed stream always carries an EOF token
		toks = []token.Token{{Type: token.TokenEOF, Line: 1}}
	}
	p := &Parser{
		toks:  toks,
		diags: diag.NewSet(),
		opts:  opts,
	}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse consumes the whole token stream and reports whether the input was
// accepted, i.e. no diagnostic was ever recorded.
func (p *Parser) Parse() bool {
	// a compilation unit is one or more function definitions
	if p.match(token.TokenEOF) {
		p.errorHere("expected at least one function definition")
		return false
	}
	for p.curTok.Type != token.TokenEOF {
		p.parseTopLevel()
	}
	return p.diags.Empty()
}

// Diagnostics returns the syntax errors recorded so far, sorted by line.
func (p *Parser) Diagnostics() []diag.Diagnostic {
	return p.diags.Sorted()
}

// --- Token Handling ---

func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	if p.pos < len(p.toks) {
		p.peekTok = p.toks[p.pos]
		p.pos++
	}
	// past the end peekTok stays on the trailing EOF token
}

func (p *Parser) match(t token.TokenType) bool {
	return p.curTok.Type == t
}

// expect consumes the current token when it matches want. Otherwise it
// records a diagnostic at the current line and synchronizes to the next
// statement boundary.
func (p *Parser) expect(want token.TokenType, format string, args ...any) bool {
	if p.curTok.Type == want {
		p.nextToken()
		return true
	}
	p.errorHere(format, args...)
	p.sync()
	return false
}

func (p *Parser) errorHere(format string, args ...any) {
	p.diags.Add(p.curTok.Line, format, args...)
}

// --- Error Recovery ---

// sync discards tokens until a statement boundary: past the next ';', or
// up to (not including) the next '}' so the enclosing block can close, or
// up to (not including) the next '{' so the body it opens still parses as
// a block, or EOF. Every step advances the cursor, so recovery always
// terminates.
func (p *Parser) sync() {
	for p.curTok.Type != token.TokenEOF {
		switch p.curTok.Type {
		case token.TokenSemicolon:
			p.nextToken()
			return
		case token.TokenLBrace, token.TokenRBrace:
			return
		}
		p.nextToken()
	}
}

// skipToFunction advances past the current token, then to the next 'int'
// or 'void' that could open a function definition. Used for recovery at
// the top level, where a stray '}' must not stall the unit loop.
func (p *Parser) skipToFunction() {
	if p.curTok.Type != token.TokenEOF {
		p.nextToken()
	}
	for p.curTok.Type != token.TokenEOF && !p.curTok.IsTypeKeyword() {
		p.nextToken()
	}
}

// --- Compilation Unit ---

// parseTopLevel handles one function definition:
//
//	("int" | "void") identifier "(" parameter-list? ")" block
func (p *Parser) parseTopLevel() {
	if !p.curTok.IsTypeKeyword() {
		p.errorHere("expected 'int' or 'void' function definition, got '%s'", p.curTok.Literal)
		p.skipToFunction()
		return
	}
	retTok := p.curTok
	p.nextToken()

	if !p.match(token.TokenIdent) {
		p.errorHere("expected function name")
		p.skipToFunction()
		return
	}
	p.nextToken()

	// `int name = ...;` or `int name;` at top level is a global variable
	// declaration, which only some dialects admit
	if retTok.Type == token.TokenInt && (p.match(token.TokenAssign) || p.match(token.TokenSemicolon)) {
		p.parseGlobal(retTok)
		return
	}

	if !p.expect(token.TokenLParen, "expected '(' after function name") {
		return
	}
	p.parseParameterList()
	if !p.expect(token.TokenRParen, "expected ')' after parameters") {
		return
	}
	p.parseBlock()
}

func (p *Parser) parseGlobal(declTok token.Token) {
	if !p.opts.AllowGlobals {
		p.diags.Add(declTok.Line, "global variable declarations are not allowed")
		p.sync()
		return
	}
	if p.match(token.TokenAssign) {
		p.nextToken()
		p.parseExpression()
	}
	p.expect(token.TokenSemicolon, "expected ';' after global declaration")
}

func (p *Parser) parseParameterList() {
	if p.match(token.TokenRParen) {
		return
	}
	p.parseParameter()
	for p.match(token.TokenComma) {
		p.nextToken()
		p.parseParameter()
	}
}

func (p *Parser) parseParameter() {
	if !p.match(token.TokenInt) {
		p.errorHere("expected 'int' parameter type")
		return
	}
	p.nextToken()
	if !p.match(token.TokenIdent) {
		p.errorHere("expected parameter name")
		return
	}
	p.nextToken()
}

// --- Statements ---

func (p *Parser) parseBlock() {
	if !p.match(token.TokenLBrace) {
		p.errorHere("expected '{'")
		p.sync()
		return
	}
	p.nextToken()

	for !p.match(token.TokenRBrace) && !p.match(token.TokenEOF) {
		p.parseStatement()
	}

	if !p.match(token.TokenRBrace) {
		p.errorHere("expected '}' to close block")
		return
	}
	p.nextToken()
}

func (p *Parser) parseStatement() {
	switch p.curTok.Type {
	case token.TokenInt:
		p.parseDeclaration()
	case token.TokenIdent:
		p.parseIdentStatement()
	case token.TokenReturn:
		p.parseReturn()
	case token.TokenIf:
		p.parseIf()
	case token.TokenWhile:
		p.parseWhile()
	case token.TokenBreak, token.TokenContinue:
		p.parseLoopJump()
	case token.TokenLBrace:
		p.parseBlock()
	case token.TokenSemicolon:
		// empty statement
		p.nextToken()
	default:
		p.errorHere("unexpected token '%s' at start of statement", p.curTok.Literal)
		p.sync()
	}
}

// parseDeclaration handles `int identifier ("=" expression)? ";"`.
func (p *Parser) parseDeclaration() {
	p.nextToken() // 'int'
	if !p.match(token.TokenIdent) {
		p.errorHere("expected variable name")
		p.sync()
		return
	}
	p.nextToken()

	if p.match(token.TokenAssign) {
		p.nextToken()
		p.parseExpression()
	}
	p.expect(token.TokenSemicolon, "expected ';' after declaration")
}

// parseIdentStatement resolves the statement-position identifier
// ambiguity on the next token: '=' selects an assignment, '(' a call
// statement, anything else is a syntax error unless bare expression
// statements are tolerated.
func (p *Parser) parseIdentStatement() {
	switch p.peekTok.Type {
	case token.TokenAssign:
		p.nextToken() // identifier
		p.nextToken() // '='
		p.parseExpression()
	case token.TokenLParen:
		p.nextToken() // identifier
		p.parseCall()
	default:
		if !p.opts.AllowBareExpressions {
			p.errorHere("expected '=' or '(' after '%s'", p.curTok.Literal)
			p.sync()
			return
		}
		p.parseExpression()
	}
	p.expect(token.TokenSemicolon, "expected ';' after statement")
}

func (p *Parser) parseReturn() {
	p.nextToken() // 'return'
	if !p.match(token.TokenSemicolon) {
		p.parseExpression()
	}
	p.expect(token.TokenSemicolon, "expected ';' after return")
}

func (p *Parser) parseIf() {
	p.nextToken() // 'if'
	if !p.expect(token.TokenLParen, "expected '(' after 'if'") {
		return
	}
	p.parseExpression()
	if !p.expect(token.TokenRParen, "expected ')' after condition") {
		return
	}
	p.parseStatement()

	if p.match(token.TokenElse) {
		p.nextToken()
		p.parseStatement()
	}
}

func (p *Parser) parseWhile() {
	p.nextToken() // 'while'
	if !p.expect(token.TokenLParen, "expected '(' after 'while'") {
		return
	}
	p.parseExpression()
	if !p.expect(token.TokenRParen, "expected ')' after condition") {
		return
	}

	p.loopDepth++
	p.parseStatement()
	p.loopDepth--
}

// parseLoopJump handles `break ;` and `continue ;`, which are only valid
// inside a while body.
func (p *Parser) parseLoopJump() {
	kw := p.curTok
	if p.loopDepth == 0 {
		p.diags.Add(kw.Line, "'%s' outside of a loop", kw.Literal)
	}
	p.nextToken()
	p.expect(token.TokenSemicolon, "expected ';' after '%s'", kw.Literal)
}

// --- Expressions ---
//
// One routine per precedence level, lowest binding first. Binary levels
// are left-associative: each loops over zero or more (operator,
// next-level) pairs.

func (p *Parser) parseExpression() {
	p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() {
	p.parseLogicalAnd()
	for p.match(token.TokenOr) {
		p.nextToken()
		p.parseLogicalAnd()
	}
}

func (p *Parser) parseLogicalAnd() {
	p.parseRelational()
	for p.match(token.TokenAnd) {
		p.nextToken()
		p.parseRelational()
	}
}

func (p *Parser) parseRelational() {
	p.parseAdditive()
	for p.matchRelationalOp() {
		p.nextToken()
		p.parseAdditive()
	}
}

func (p *Parser) matchRelationalOp() bool {
	switch p.curTok.Type {
	case token.TokenLt, token.TokenLe, token.TokenGt, token.TokenGe, token.TokenEq, token.TokenNotEq:
		return true
	}
	return false
}

func (p *Parser) parseAdditive() {
	p.parseMultiplicative()
	for p.match(token.TokenPlus) || p.match(token.TokenMinus) {
		p.nextToken()
		p.parseMultiplicative()
	}
}

func (p *Parser) parseMultiplicative() {
	p.parseUnary()
	for p.match(token.TokenAsterisk) || p.match(token.TokenSlash) || p.match(token.TokenPercent) {
		p.nextToken()
		p.parseUnary()
	}
}

// parseUnary handles the right-recursive prefix operators +, - and !.
func (p *Parser) parseUnary() {
	switch p.curTok.Type {
	case token.TokenPlus, token.TokenMinus, token.TokenBang:
		p.nextToken()
		p.parseUnary()
	default:
		p.parsePrimary()
	}
}

// parsePrimary handles number literals, identifiers, function calls and
// parenthesized expressions.
func (p *Parser) parsePrimary() {
	switch p.curTok.Type {
	case token.TokenNumber:
		p.nextToken()
	case token.TokenIdent:
		p.nextToken()
		if p.match(token.TokenLParen) {
			p.parseCall()
		}
	case token.TokenLParen:
		p.nextToken()
		p.parseExpression()
		p.expect(token.TokenRParen, "expected ')'")
	default:
		p.errorHere("expected expression, got '%s'", p.curTok.Literal)
		// skip one token so expression loops cannot stall, but leave
		// boundary tokens for the enclosing statement's recovery
		switch p.curTok.Type {
		case token.TokenEOF, token.TokenSemicolon, token.TokenLBrace, token.TokenRBrace:
		default:
			p.nextToken()
		}
	}
}

// parseCall consumes an argument list, current token on '('.
func (p *Parser) parseCall() {
	p.nextToken() // '('
	if !p.match(token.TokenRParen) {
		p.parseExpression()
		for p.match(token.TokenComma) {
			p.nextToken()
			p.parseExpression()
		}
	}
	p.expect(token.TokenRParen, "expected ')' after arguments")
}
