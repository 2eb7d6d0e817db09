package symbol

// State 作用域中名字的状态
type State int

const (
	// Declared 已声明但初始化表达式尚未解析完
	Declared State = iota + 1
	// Defined 可以使用
	Defined
)

// Scope 一层词法作用域
type Scope map[string]State

// Table 词法作用域栈，最内层在末尾；栈为空表示全局作用域
type Table struct {
	scopes []Scope
}

// New 创建一个新的作用域栈
func New() *Table {
	return &Table{}
}

// Begin 进入新作用域
func (t *Table) Begin() {
	t.scopes = append(t.scopes, make(Scope))
}

// End 离开当前作用域
func (t *Table) End() {
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// IsGlobal 是否处于全局作用域
func (t *Table) IsGlobal() bool {
	return len(t.scopes) == 0
}

// innermost 返回最内层作用域，全局时为 nil
func (t *Table) innermost() Scope {
	if t.IsGlobal() {
		return nil
	}
	return t.scopes[len(t.scopes)-1]
}

// Declare 在最内层作用域声明名字
// 同一作用域中已存在该名字时返回 false；全局作用域不做记录，总是返回 true
func (t *Table) Declare(name string) bool {
	scope := t.innermost()
	if scope == nil {
		return true
	}
	if _, exists := scope[name]; exists {
		return false
	}
	scope[name] = Declared
	return true
}

// Define 把最内层作用域中的名字标记为可用
func (t *Table) Define(name string) {
	if scope := t.innermost(); scope != nil {
		scope[name] = Defined
	}
}

// Lookup 从最内层向外查找名字，返回跨越的作用域层数
func (t *Table) Lookup(name string) (hops int, ok bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if _, found := t.scopes[i][name]; found {
			return len(t.scopes) - 1 - i, true
		}
	}
	return 0, false
}

// InInitializer 名字是否在最内层作用域中已声明但尚未定义
func (t *Table) InInitializer(name string) bool {
	scope := t.innermost()
	return scope != nil && scope[name] == Declared
}
