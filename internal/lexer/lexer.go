package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/tangzhangming/tulox/internal/diag"
	"github.com/tangzhangming/tulox/internal/i18n"
)

// Lexer 词法分析器
type Lexer struct {
	input   string
	pos     int  // 当前位置
	readPos int  // 下一个读取位置
	ch      byte // 当前字符
	line    int  // 当前行号
	sink    diag.Sink
}

// New 创建一个新的词法分析器，词法错误报告给 sink
func New(input string, sink diag.Sink) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		sink:  sink,
	}
	l.readChar()
	return l
}

// readChar 读取下一个字符
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
	if l.ch == '\n' {
		l.line++
	}
}

// peekChar 查看下一个字符但不移动位置
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// atEnd 是否已读完全部输入
func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.input)
}

// NextToken 获取下一个 token，输入结束后一直返回 EOF
func (l *Lexer) NextToken() Token {
	for {
		l.skipWhitespace()

		if l.atEnd() {
			return Token{Type: TOKEN_EOF, Line: l.line}
		}

		start, line := l.pos, l.line
		var typ TokenType

		switch l.ch {
		case '(':
			typ = TOKEN_LEFT_PAREN
		case ')':
			typ = TOKEN_RIGHT_PAREN
		case '{':
			typ = TOKEN_LEFT_BRACE
		case '}':
			typ = TOKEN_RIGHT_BRACE
		case ',':
			typ = TOKEN_COMMA
		case '.':
			typ = TOKEN_DOT
		case '-':
			typ = TOKEN_MINUS
		case '+':
			typ = TOKEN_PLUS
		case ';':
			typ = TOKEN_SEMICOLON
		case '/':
			typ = TOKEN_SLASH
		case '*':
			typ = TOKEN_STAR
		case '!':
			typ = l.twoChar('=', TOKEN_BANG_EQUAL, TOKEN_BANG)
		case '=':
			typ = l.twoChar('=', TOKEN_EQUAL_EQUAL, TOKEN_EQUAL)
		case '<':
			typ = l.twoChar('=', TOKEN_LESS_EQUAL, TOKEN_LESS)
		case '>':
			typ = l.twoChar('=', TOKEN_GREATER_EQUAL, TOKEN_GREATER)
		case '"':
			if tok, ok := l.readString(); ok {
				return tok
			}
			continue
		default:
			if isDigit(l.ch) {
				return l.readNumber()
			}
			if isAlpha(l.ch) {
				return l.readIdentifier()
			}
			// 非 ASCII 字符按完整的 UTF-8 字符报告并跳过
			r, size := utf8.DecodeRuneInString(l.input[l.pos:])
			l.sink.Report(line, "", i18n.T(i18n.ErrUnexpectedChar, string(r)))
			for i := 0; i < size; i++ {
				l.readChar()
			}
			continue
		}

		l.readChar()
		return Token{Type: typ, Lexeme: l.input[start:l.pos], Line: line}
	}
}

// twoChar 若下一个字符为 next 则组成双字符 token
func (l *Lexer) twoChar(next byte, double, single TokenType) TokenType {
	if l.peekChar() == next {
		l.readChar()
		return double
	}
	return single
}

// skipWhitespace 跳过空白字符和注释
func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.ch {
		case ' ', '\t', '\r', '\n':
			l.readChar()
		case '/':
			switch l.peekChar() {
			case '/':
				l.skipLineComment()
			case '*':
				l.skipBlockComment()
			default:
				return
			}
		default:
			return
		}
	}
}

// skipLineComment 跳过单行注释
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && !l.atEnd() {
		l.readChar()
	}
}

// skipBlockComment 跳过块注释，支持嵌套
func (l *Lexer) skipBlockComment() {
	l.readChar() // 跳过 /
	l.readChar() // 跳过 *
	depth := 1
	for {
		if l.atEnd() {
			l.sink.Report(l.line, "", i18n.T(i18n.ErrUnterminatedComment))
			return
		}
		if l.ch == '/' && l.peekChar() == '*' {
			l.readChar()
			l.readChar()
			depth++
			continue
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			depth--
			if depth == 0 {
				return
			}
			continue
		}
		l.readChar()
	}
}

// readString 读取双引号字符串，不处理转义
func (l *Lexer) readString() (Token, bool) {
	start, line := l.pos, l.line
	l.readChar() // 跳过开头的 "
	for l.ch != '"' && !l.atEnd() {
		l.readChar()
	}
	if l.atEnd() {
		l.sink.Report(l.line, "", i18n.T(i18n.ErrUnterminatedString))
		return Token{}, false
	}
	l.readChar() // 跳过结尾的 "
	lexeme := l.input[start:l.pos]
	return Token{
		Type:    TOKEN_STRING,
		Lexeme:  lexeme,
		Literal: lexeme[1 : len(lexeme)-1],
		Line:    line,
	}, true
}

// readNumber 读取数字（整数或小数）
func (l *Lexer) readNumber() Token {
	start, line := l.pos, l.line
	for isDigit(l.ch) {
		l.readChar()
	}

	// 小数点后必须跟数字
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	lexeme := l.input[start:l.pos]
	value, _ := strconv.ParseFloat(lexeme, 64)
	return Token{Type: TOKEN_NUMBER, Lexeme: lexeme, Literal: value, Line: line}
}

// readIdentifier 读取标识符或关键字
func (l *Lexer) readIdentifier() Token {
	start, line := l.pos, l.line
	for isAlpha(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.pos]
	return Token{Type: LookupIdent(lexeme), Lexeme: lexeme, Line: line}
}

func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize 将输入字符串转换为 token 列表，末尾总是 EOF
func Tokenize(input string, sink diag.Sink) []Token {
	l := New(input, sink)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TOKEN_EOF {
			break
		}
	}
	return tokens
}
