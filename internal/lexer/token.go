package lexer

import (
	"fmt"

	"github.com/tangzhangming/tulox/internal/i18n"
)

// TokenType 表示 token 的类型
type TokenType int

const (
	// 单字符 token
	TOKEN_LEFT_PAREN  TokenType = iota // (
	TOKEN_RIGHT_PAREN                  // )
	TOKEN_LEFT_BRACE                   // {
	TOKEN_RIGHT_BRACE                  // }
	TOKEN_COMMA                        // ,
	TOKEN_DOT                          // .
	TOKEN_MINUS                        // -
	TOKEN_PLUS                         // +
	TOKEN_SEMICOLON                    // ;
	TOKEN_SLASH                        // /
	TOKEN_STAR                         // *

	// 一到两个字符的 token
	TOKEN_BANG          // !
	TOKEN_BANG_EQUAL    // !=
	TOKEN_EQUAL         // =
	TOKEN_EQUAL_EQUAL   // ==
	TOKEN_GREATER       // >
	TOKEN_GREATER_EQUAL // >=
	TOKEN_LESS          // <
	TOKEN_LESS_EQUAL    // <=

	// 字面量
	TOKEN_IDENTIFIER // 标识符
	TOKEN_STRING     // 字符串
	TOKEN_NUMBER     // 数字

	// 关键字
	TOKEN_AND    // and
	TOKEN_BREAK  // break
	TOKEN_CLASS  // class
	TOKEN_ELSE   // else
	TOKEN_FALSE  // false
	TOKEN_FUN    // fun
	TOKEN_FOR    // for
	TOKEN_IF     // if
	TOKEN_NIL    // nil
	TOKEN_OR     // or
	TOKEN_PRINT  // print
	TOKEN_RETURN // return
	TOKEN_SUPER  // super
	TOKEN_THIS   // this
	TOKEN_TRUE   // true
	TOKEN_VAR    // var
	TOKEN_WHILE  // while

	TOKEN_EOF
)

// Token 表示一个词法单元，只由扫描器创建
type Token struct {
	Type    TokenType
	Lexeme  string // 源码中的原始文本
	Literal any    // 数字为 float64，字符串为去掉引号的内容，其余为 nil
	Line    int
}

// String 返回 token 的调试表示
func (t Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %s", t.Type, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
}

// Where 返回诊断信息中的位置描述，如 " at 'foo'" 或 " at end"
func (t Token) Where() string {
	if t.Type == TOKEN_EOF {
		return i18n.T(i18n.MsgWhereEnd)
	}
	return i18n.T(i18n.MsgWhereToken, t.Lexeme)
}

var keywords = map[string]TokenType{
	"and":    TOKEN_AND,
	"break":  TOKEN_BREAK,
	"class":  TOKEN_CLASS,
	"else":   TOKEN_ELSE,
	"false":  TOKEN_FALSE,
	"fun":    TOKEN_FUN,
	"for":    TOKEN_FOR,
	"if":     TOKEN_IF,
	"nil":    TOKEN_NIL,
	"or":     TOKEN_OR,
	"print":  TOKEN_PRINT,
	"return": TOKEN_RETURN,
	"super":  TOKEN_SUPER,
	"this":   TOKEN_THIS,
	"true":   TOKEN_TRUE,
	"var":    TOKEN_VAR,
	"while":  TOKEN_WHILE,
}

// LookupIdent 查找标识符是否为关键字
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TOKEN_IDENTIFIER
}

var tokenNames = map[TokenType]string{
	TOKEN_LEFT_PAREN:    "LEFT_PAREN",
	TOKEN_RIGHT_PAREN:   "RIGHT_PAREN",
	TOKEN_LEFT_BRACE:    "LEFT_BRACE",
	TOKEN_RIGHT_BRACE:   "RIGHT_BRACE",
	TOKEN_COMMA:         "COMMA",
	TOKEN_DOT:           "DOT",
	TOKEN_MINUS:         "MINUS",
	TOKEN_PLUS:          "PLUS",
	TOKEN_SEMICOLON:     "SEMICOLON",
	TOKEN_SLASH:         "SLASH",
	TOKEN_STAR:          "STAR",
	TOKEN_BANG:          "BANG",
	TOKEN_BANG_EQUAL:    "BANG_EQUAL",
	TOKEN_EQUAL:         "EQUAL",
	TOKEN_EQUAL_EQUAL:   "EQUAL_EQUAL",
	TOKEN_GREATER:       "GREATER",
	TOKEN_GREATER_EQUAL: "GREATER_EQUAL",
	TOKEN_LESS:          "LESS",
	TOKEN_LESS_EQUAL:    "LESS_EQUAL",
	TOKEN_IDENTIFIER:    "IDENTIFIER",
	TOKEN_STRING:        "STRING",
	TOKEN_NUMBER:        "NUMBER",
	TOKEN_AND:           "AND",
	TOKEN_BREAK:         "BREAK",
	TOKEN_CLASS:         "CLASS",
	TOKEN_ELSE:          "ELSE",
	TOKEN_FALSE:         "FALSE",
	TOKEN_FUN:           "FUN",
	TOKEN_FOR:           "FOR",
	TOKEN_IF:            "IF",
	TOKEN_NIL:           "NIL",
	TOKEN_OR:            "OR",
	TOKEN_PRINT:         "PRINT",
	TOKEN_RETURN:        "RETURN",
	TOKEN_SUPER:         "SUPER",
	TOKEN_THIS:          "THIS",
	TOKEN_TRUE:          "TRUE",
	TOKEN_VAR:           "VAR",
	TOKEN_WHILE:         "WHILE",
	TOKEN_EOF:           "EOF",
}

// String 返回 token 类型的名称
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}
