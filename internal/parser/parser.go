package parser

import (
	"github.com/tangzhangming/tulox/internal/diag"
	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/lexer"
)

const (
	// MaxParams 函数参数个数上限
	MaxParams = 8
	// MaxArgs 调用实参个数上限
	MaxArgs = 255
)

// bailout 用于从出错的声明中退出，由 declaration 恢复后同步到下一条语句
type bailout struct{}

// Parser 递归下降语法分析器
type Parser struct {
	tokens    []lexer.Token
	pos       int
	loopDepth int
	sink      diag.Sink
}

// New 创建一个新的语法分析器，tokens 必须以 EOF 结尾
func New(tokens []lexer.Token, sink diag.Sink) *Parser {
	return &Parser{tokens: tokens, sink: sink}
}

// Parse 解析整个程序
func (p *Parser) Parse() *Program {
	prog := &Program{}
	for !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
	}

	// 只有一条表达式语句时，同时作为独立表达式返回
	if len(prog.Statements) == 1 {
		if es, ok := prog.Statements[0].(*ExpressionStmt); ok {
			prog.Expr = es.Expression
		}
	}
	return prog
}

// curToken 当前 token
func (p *Parser) curToken() lexer.Token {
	return p.tokens[p.pos]
}

// peekToken 当前 token 的下一个
func (p *Parser) peekToken() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

// previous 上一个已消费的 token
func (p *Parser) previous() lexer.Token {
	return p.tokens[p.pos-1]
}

func (p *Parser) atEnd() bool {
	return p.curToken().Type == lexer.TOKEN_EOF
}

// curTokenIs 检查当前 token 类型
func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	if p.atEnd() {
		return false
	}
	return p.curToken().Type == t
}

// peekTokenIs 检查下一个 token 类型
func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	if p.atEnd() {
		return false
	}
	return p.peekToken().Type == t
}

// nextToken 前进到下一个 token，返回被消费的 token
func (p *Parser) nextToken() lexer.Token {
	if !p.atEnd() {
		p.pos++
	}
	return p.previous()
}

// match 当前 token 为任一给定类型时消费它
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.curTokenIs(t) {
			p.nextToken()
			return true
		}
	}
	return false
}

// expect 期望当前 token 类型并前进，否则报告错误并退出当前声明
func (p *Parser) expect(t lexer.TokenType, msg string) lexer.Token {
	if p.curTokenIs(t) {
		return p.nextToken()
	}
	p.fail(p.curToken(), msg)
	return lexer.Token{}
}

// addError 报告错误但继续解析
func (p *Parser) addError(tok lexer.Token, msg string) {
	p.sink.Report(tok.Line, tok.Where(), msg)
}

// fail 报告错误并退出当前声明
func (p *Parser) fail(tok lexer.Token, msg string) {
	p.addError(tok, msg)
	panic(bailout{})
}

// synchronize 丢弃 token 直到下一条语句的边界
func (p *Parser) synchronize() {
	p.nextToken()
	for !p.atEnd() {
		if p.previous().Type == lexer.TOKEN_SEMICOLON {
			return
		}
		switch p.curToken().Type {
		case lexer.TOKEN_CLASS, lexer.TOKEN_FUN, lexer.TOKEN_VAR, lexer.TOKEN_FOR,
			lexer.TOKEN_IF, lexer.TOKEN_WHILE, lexer.TOKEN_PRINT, lexer.TOKEN_RETURN,
			lexer.TOKEN_BREAK:
			return
		}
		p.nextToken()
	}
}

// declaration 解析声明，出错时同步并返回 nil
func (p *Parser) declaration() (stmt Statement) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			p.synchronize()
			stmt = nil
		}
	}()

	if p.match(lexer.TOKEN_CLASS) {
		return p.parseClassDecl()
	}
	// fun 后紧跟标识符才是函数声明，否则是匿名函数表达式
	if p.curTokenIs(lexer.TOKEN_FUN) && p.peekTokenIs(lexer.TOKEN_IDENTIFIER) {
		p.nextToken()
		return p.parseFunction("function")
	}
	if p.match(lexer.TOKEN_VAR) {
		return p.parseVarDecl()
	}
	return p.parseStatement()
}

// parseClassDecl 解析类声明
func (p *Parser) parseClassDecl() Statement {
	name := p.expect(lexer.TOKEN_IDENTIFIER, i18n.T(i18n.ErrExpectClassName))

	var superclass *VariableExpr
	if p.match(lexer.TOKEN_LESS) {
		p.expect(lexer.TOKEN_IDENTIFIER, i18n.T(i18n.ErrExpectSuperclassName))
		superclass = &VariableExpr{Name: p.previous()}
	}

	p.expect(lexer.TOKEN_LEFT_BRACE, i18n.T(i18n.ErrExpectClassBody))

	var methods []*FunctionStmt
	for !p.curTokenIs(lexer.TOKEN_RIGHT_BRACE) && !p.atEnd() {
		methods = append(methods, p.parseFunction("method"))
	}

	p.expect(lexer.TOKEN_RIGHT_BRACE, i18n.T(i18n.ErrExpectClassBodyEnd))
	return &ClassStmt{Name: name, Superclass: superclass, Methods: methods}
}

// parseFunction 解析具名函数或方法
func (p *Parser) parseFunction(kind string) *FunctionStmt {
	name := p.expect(lexer.TOKEN_IDENTIFIER, i18n.T(i18n.ErrExpectFuncName, kind))
	return &FunctionStmt{Name: name, Function: p.parseFunctionBody(name, kind)}
}

// parseFunctionBody 解析参数列表和函数体，具名函数、方法和匿名函数共用
func (p *Parser) parseFunctionBody(keyword lexer.Token, kind string) *FunctionExpr {
	p.expect(lexer.TOKEN_LEFT_PAREN, i18n.T(i18n.ErrExpectParamsStart, kind))

	var params []lexer.Token
	if !p.curTokenIs(lexer.TOKEN_RIGHT_PAREN) {
		for {
			if len(params) >= MaxParams {
				p.addError(p.curToken(), i18n.T(i18n.ErrTooManyParams, MaxParams))
			}
			params = append(params, p.expect(lexer.TOKEN_IDENTIFIER, i18n.T(i18n.ErrExpectParamName)))
			if !p.match(lexer.TOKEN_COMMA) {
				break
			}
		}
	}
	p.expect(lexer.TOKEN_RIGHT_PAREN, i18n.T(i18n.ErrExpectParamsEnd))
	p.expect(lexer.TOKEN_LEFT_BRACE, i18n.T(i18n.ErrExpectFuncBody, kind))

	// 函数体内的 break 不能跳出外层循环
	enclosingLoops := p.loopDepth
	p.loopDepth = 0
	defer func() { p.loopDepth = enclosingLoops }()

	return &FunctionExpr{Keyword: keyword, Params: params, Body: p.parseBlock()}
}

// parseVarDecl 解析变量声明
func (p *Parser) parseVarDecl() Statement {
	name := p.expect(lexer.TOKEN_IDENTIFIER, i18n.T(i18n.ErrExpectVarName))

	var init Expression
	if p.match(lexer.TOKEN_EQUAL) {
		init = p.parseExpression()
	}
	p.expect(lexer.TOKEN_SEMICOLON, i18n.T(i18n.ErrExpectVarEnd))
	return &VarStmt{Name: name, Initializer: init}
}

// parseStatement 解析语句
func (p *Parser) parseStatement() Statement {
	switch {
	case p.match(lexer.TOKEN_FOR):
		return p.parseForStmt()
	case p.match(lexer.TOKEN_IF):
		return p.parseIfStmt()
	case p.match(lexer.TOKEN_PRINT):
		return p.parsePrintStmt()
	case p.match(lexer.TOKEN_RETURN):
		return p.parseReturnStmt()
	case p.match(lexer.TOKEN_WHILE):
		return p.parseWhileStmt()
	case p.match(lexer.TOKEN_BREAK):
		return p.parseBreakStmt()
	case p.match(lexer.TOKEN_LEFT_BRACE):
		return &BlockStmt{Statements: p.parseBlock()}
	}
	return p.parseExpressionStatement()
}

// parseForStmt 解析 for 循环并脱糖为 while
func (p *Parser) parseForStmt() Statement {
	p.expect(lexer.TOKEN_LEFT_PAREN, i18n.T(i18n.ErrExpectForStart))

	var initializer Statement
	switch {
	case p.match(lexer.TOKEN_SEMICOLON):
	case p.match(lexer.TOKEN_VAR):
		initializer = p.parseVarDecl()
	default:
		initializer = p.parseExpressionStatement()
	}

	var condition Expression
	if !p.curTokenIs(lexer.TOKEN_SEMICOLON) {
		condition = p.parseExpression()
	}
	p.expect(lexer.TOKEN_SEMICOLON, i18n.T(i18n.ErrExpectLoopCondEnd))

	var increment Expression
	if !p.curTokenIs(lexer.TOKEN_RIGHT_PAREN) {
		increment = p.parseExpression()
	}
	p.expect(lexer.TOKEN_RIGHT_PAREN, i18n.T(i18n.ErrExpectForEnd))

	body := p.parseLoopBody()

	if increment != nil {
		body = &BlockStmt{Statements: []Statement{body, &ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = &LiteralExpr{Value: true}
	}
	body = &WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &BlockStmt{Statements: []Statement{initializer, body}}
	}
	return body
}

// parseLoopBody 解析循环体并记录循环嵌套深度
func (p *Parser) parseLoopBody() Statement {
	p.loopDepth++
	defer func() { p.loopDepth-- }()
	return p.parseStatement()
}

// parseIfStmt 解析 if 语句
func (p *Parser) parseIfStmt() Statement {
	p.expect(lexer.TOKEN_LEFT_PAREN, i18n.T(i18n.ErrExpectIfStart))
	condition := p.parseExpression()
	p.expect(lexer.TOKEN_RIGHT_PAREN, i18n.T(i18n.ErrExpectIfEnd))

	stmt := &IfStmt{Condition: condition, Then: p.parseStatement()}
	if p.match(lexer.TOKEN_ELSE) {
		stmt.Else = p.parseStatement()
	}
	return stmt
}

// parsePrintStmt 解析 print 语句
func (p *Parser) parsePrintStmt() Statement {
	value := p.parseExpression()
	p.expect(lexer.TOKEN_SEMICOLON, i18n.T(i18n.ErrExpectPrintEnd))
	return &PrintStmt{Expression: value}
}

// parseReturnStmt 解析 return 语句
func (p *Parser) parseReturnStmt() Statement {
	keyword := p.previous()

	var value Expression
	if !p.curTokenIs(lexer.TOKEN_SEMICOLON) {
		value = p.parseExpression()
	}
	p.expect(lexer.TOKEN_SEMICOLON, i18n.T(i18n.ErrExpectReturnEnd))
	return &ReturnStmt{Keyword: keyword, Value: value}
}

// parseWhileStmt 解析 while 循环
func (p *Parser) parseWhileStmt() Statement {
	p.expect(lexer.TOKEN_LEFT_PAREN, i18n.T(i18n.ErrExpectWhileStart))
	condition := p.parseExpression()
	p.expect(lexer.TOKEN_RIGHT_PAREN, i18n.T(i18n.ErrExpectWhileEnd))
	return &WhileStmt{Condition: condition, Body: p.parseLoopBody()}
}

// parseBreakStmt 解析 break 语句
func (p *Parser) parseBreakStmt() Statement {
	keyword := p.previous()
	if p.loopDepth == 0 {
		p.addError(keyword, i18n.T(i18n.ErrBreakOutsideLoop))
	}
	p.expect(lexer.TOKEN_SEMICOLON, i18n.T(i18n.ErrExpectBreakEnd))
	return &BreakStmt{Keyword: keyword}
}

// parseBlock 解析 { 之后的语句直到 }
func (p *Parser) parseBlock() []Statement {
	var stmts []Statement
	for !p.curTokenIs(lexer.TOKEN_RIGHT_BRACE) && !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.expect(lexer.TOKEN_RIGHT_BRACE, i18n.T(i18n.ErrExpectBlockEnd))
	return stmts
}

// parseExpressionStatement 解析表达式语句
func (p *Parser) parseExpressionStatement() Statement {
	expr := p.parseExpression()
	p.expect(lexer.TOKEN_SEMICOLON, i18n.T(i18n.ErrExpectExprEnd))
	return &ExpressionStmt{Expression: expr}
}

// parseExpression 解析表达式
func (p *Parser) parseExpression() Expression {
	return p.parseAssignment()
}

// parseAssignment 解析右结合的赋值
func (p *Parser) parseAssignment() Expression {
	expr := p.parseOr()

	if p.match(lexer.TOKEN_EQUAL) {
		equals := p.previous()
		value := p.parseAssignment()

		switch target := expr.(type) {
		case *VariableExpr:
			return &AssignExpr{Name: target.Name, Value: value}
		case *GetExpr:
			return &SetExpr{Object: target.Object, Name: target.Name, Value: value}
		}
		p.addError(equals, i18n.T(i18n.ErrInvalidAssignTarget))
	}
	return expr
}

// parseOr 解析 or
func (p *Parser) parseOr() Expression {
	expr := p.parseAnd()
	for p.match(lexer.TOKEN_OR) {
		operator := p.previous()
		right := p.parseAnd()
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// parseAnd 解析 and
func (p *Parser) parseAnd() Expression {
	expr := p.parseEquality()
	for p.match(lexer.TOKEN_AND) {
		operator := p.previous()
		right := p.parseEquality()
		expr = &LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// parseBinary 解析左结合的一层二元运算
func (p *Parser) parseBinary(next func() Expression, operators ...lexer.TokenType) Expression {
	expr := next()
	for p.match(operators...) {
		operator := p.previous()
		right := next()
		expr = &BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) parseEquality() Expression {
	return p.parseBinary(p.parseComparison, lexer.TOKEN_BANG_EQUAL, lexer.TOKEN_EQUAL_EQUAL)
}

func (p *Parser) parseComparison() Expression {
	return p.parseBinary(p.parseTerm,
		lexer.TOKEN_GREATER, lexer.TOKEN_GREATER_EQUAL, lexer.TOKEN_LESS, lexer.TOKEN_LESS_EQUAL)
}

func (p *Parser) parseTerm() Expression {
	return p.parseBinary(p.parseFactor, lexer.TOKEN_MINUS, lexer.TOKEN_PLUS)
}

func (p *Parser) parseFactor() Expression {
	return p.parseBinary(p.parseUnary, lexer.TOKEN_SLASH, lexer.TOKEN_STAR)
}

// parseUnary 解析 ! 和 -
func (p *Parser) parseUnary() Expression {
	if p.match(lexer.TOKEN_BANG, lexer.TOKEN_MINUS) {
		operator := p.previous()
		return &UnaryExpr{Operator: operator, Right: p.parseUnary()}
	}
	return p.parseCall()
}

// parseCall 解析调用和属性访问
func (p *Parser) parseCall() Expression {
	expr := p.parsePrimary()
	for {
		if p.match(lexer.TOKEN_LEFT_PAREN) {
			expr = p.parseCallArguments(expr)
		} else if p.match(lexer.TOKEN_DOT) {
			name := p.expect(lexer.TOKEN_IDENTIFIER, i18n.T(i18n.ErrExpectPropertyName))
			expr = &GetExpr{Object: expr, Name: name}
		} else {
			return expr
		}
	}
}

// parseCallArguments 解析调用实参
func (p *Parser) parseCallArguments(callee Expression) Expression {
	var args []Expression
	if !p.curTokenIs(lexer.TOKEN_RIGHT_PAREN) {
		for {
			if len(args) >= MaxArgs {
				p.addError(p.curToken(), i18n.T(i18n.ErrTooManyArgs, MaxArgs))
			}
			args = append(args, p.parseExpression())
			if !p.match(lexer.TOKEN_COMMA) {
				break
			}
		}
	}
	paren := p.expect(lexer.TOKEN_RIGHT_PAREN, i18n.T(i18n.ErrExpectArgsEnd))
	return &CallExpr{Callee: callee, Paren: paren, Arguments: args}
}

// parsePrimary 解析基本表达式
func (p *Parser) parsePrimary() Expression {
	switch {
	case p.match(lexer.TOKEN_FALSE):
		return &LiteralExpr{Value: false}
	case p.match(lexer.TOKEN_TRUE):
		return &LiteralExpr{Value: true}
	case p.match(lexer.TOKEN_NIL):
		return &LiteralExpr{Value: nil}
	case p.match(lexer.TOKEN_NUMBER, lexer.TOKEN_STRING):
		return &LiteralExpr{Value: p.previous().Literal}
	case p.match(lexer.TOKEN_FUN):
		return p.parseFunctionBody(p.previous(), "function")
	case p.match(lexer.TOKEN_THIS):
		return &ThisExpr{Keyword: p.previous()}
	case p.match(lexer.TOKEN_SUPER):
		keyword := p.previous()
		p.expect(lexer.TOKEN_DOT, i18n.T(i18n.ErrExpectSuperDot))
		method := p.expect(lexer.TOKEN_IDENTIFIER, i18n.T(i18n.ErrExpectSuperMethod))
		return &SuperExpr{Keyword: keyword, Method: method}
	case p.match(lexer.TOKEN_IDENTIFIER):
		return &VariableExpr{Name: p.previous()}
	case p.match(lexer.TOKEN_LEFT_PAREN):
		expr := p.parseExpression()
		p.expect(lexer.TOKEN_RIGHT_PAREN, i18n.T(i18n.ErrExpectGroupEnd))
		return &GroupingExpr{Expression: expr}
	}
	p.fail(p.curToken(), i18n.T(i18n.ErrExpectExpression))
	return nil
}
