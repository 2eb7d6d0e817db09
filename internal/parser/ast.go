package parser

import (
	"github.com/tangzhangming/tulox/internal/lexer"
)

// Expression 表达式接口
//
// 表达式节点总是以指针形式出现在树中，解析绑定阶段以节点指针为键记录作用域距离，
// 因此每个节点的身份在整棵树的生命周期内必须稳定且唯一。
type Expression interface {
	expressionNode()
}

// Statement 语句接口
type Statement interface {
	statementNode()
}

// Program 解析结果
type Program struct {
	Statements []Statement
	// Expr 当输入恰好是一条表达式语句时为该表达式，供 REPL 直接求值并回显
	Expr Expression
}

// LiteralExpr 字面量：nil、bool、float64 或 string
type LiteralExpr struct {
	Value any
}

func (e *LiteralExpr) expressionNode() {}

// VariableExpr 变量引用
type VariableExpr struct {
	Name lexer.Token
}

func (e *VariableExpr) expressionNode() {}

// AssignExpr 变量赋值
type AssignExpr struct {
	Name  lexer.Token
	Value Expression
}

func (e *AssignExpr) expressionNode() {}

// BinaryExpr 二元运算
type BinaryExpr struct {
	Left     Expression
	Operator lexer.Token
	Right    Expression
}

func (e *BinaryExpr) expressionNode() {}

// LogicalExpr 短路求值的 and / or
type LogicalExpr struct {
	Left     Expression
	Operator lexer.Token
	Right    Expression
}

func (e *LogicalExpr) expressionNode() {}

// UnaryExpr 一元运算
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expression
}

func (e *UnaryExpr) expressionNode() {}

// GroupingExpr 括号表达式
type GroupingExpr struct {
	Expression Expression
}

func (e *GroupingExpr) expressionNode() {}

// CallExpr 函数调用
type CallExpr struct {
	Callee    Expression
	Paren     lexer.Token // 右括号，用于报告错误位置
	Arguments []Expression
}

func (e *CallExpr) expressionNode() {}

// GetExpr 属性读取 obj.name
type GetExpr struct {
	Object Expression
	Name   lexer.Token
}

func (e *GetExpr) expressionNode() {}

// SetExpr 属性赋值 obj.name = value
type SetExpr struct {
	Object Expression
	Name   lexer.Token
	Value  Expression
}

func (e *SetExpr) expressionNode() {}

// ThisExpr this 表达式
type ThisExpr struct {
	Keyword lexer.Token
}

func (e *ThisExpr) expressionNode() {}

// SuperExpr super.method 表达式
type SuperExpr struct {
	Keyword lexer.Token
	Method  lexer.Token
}

func (e *SuperExpr) expressionNode() {}

// FunctionExpr 函数字面量，具名函数声明、方法和匿名函数共用
type FunctionExpr struct {
	Keyword lexer.Token // fun 或方法名
	Params  []lexer.Token
	Body    []Statement
}

func (e *FunctionExpr) expressionNode() {}

// ExpressionStmt 表达式语句
type ExpressionStmt struct {
	Expression Expression
}

func (s *ExpressionStmt) statementNode() {}

// PrintStmt print 语句
type PrintStmt struct {
	Expression Expression
}

func (s *PrintStmt) statementNode() {}

// VarStmt 变量声明
type VarStmt struct {
	Name        lexer.Token
	Initializer Expression // 可选
}

func (s *VarStmt) statementNode() {}

// BlockStmt 代码块
type BlockStmt struct {
	Statements []Statement
}

func (s *BlockStmt) statementNode() {}

// IfStmt if 语句
type IfStmt struct {
	Condition Expression
	Then      Statement
	Else      Statement // 可选
}

func (s *IfStmt) statementNode() {}

// WhileStmt while 循环，for 循环也脱糖为它
type WhileStmt struct {
	Condition Expression
	Body      Statement
}

func (s *WhileStmt) statementNode() {}

// BreakStmt break 语句
type BreakStmt struct {
	Keyword lexer.Token
}

func (s *BreakStmt) statementNode() {}

// FunctionStmt 具名函数声明
type FunctionStmt struct {
	Name     lexer.Token
	Function *FunctionExpr
}

func (s *FunctionStmt) statementNode() {}

// ReturnStmt return 语句
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expression // 可选
}

func (s *ReturnStmt) statementNode() {}

// ClassStmt 类声明
type ClassStmt struct {
	Name       lexer.Token
	Superclass *VariableExpr // 可选
	Methods    []*FunctionStmt
}

func (s *ClassStmt) statementNode() {}
