package resolver

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/tulox/internal/diag"
	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/lexer"
	"github.com/tangzhangming/tulox/internal/parser"
)

func TestMain(m *testing.M) {
	i18n.SetLanguage(i18n.LangEnglish)
	os.Exit(m.Run())
}

// binding 一条解析结果，赋值以 "=" 开头
type binding struct {
	name  string
	depth int
}

type recordingBinder struct {
	bindings []binding
}

func (b *recordingBinder) Resolve(expr parser.Expression, depth int) {
	var name string
	switch e := expr.(type) {
	case *parser.VariableExpr:
		name = e.Name.Lexeme
	case *parser.AssignExpr:
		name = "=" + e.Name.Lexeme
	case *parser.ThisExpr:
		name = "this"
	case *parser.SuperExpr:
		name = "super"
	}
	b.bindings = append(b.bindings, binding{name, depth})
}

func resolve(t *testing.T, input string) ([]binding, []string) {
	t.Helper()
	r := diag.NewReporter(nil, diag.ColorNever)
	prog := parser.New(lexer.Tokenize(input, r), r).Parse()
	require.False(t, r.HadError(), "parse errors in %q: %v", input, r.Diagnostics())

	binder := &recordingBinder{}
	New(binder, r).Resolve(prog.Statements)

	var errs []string
	for _, d := range r.Diagnostics() {
		errs = append(errs, d.String())
	}
	return binder.bindings, errs
}

func TestHopCounts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []binding
	}{
		{
			name:  "globals stay unresolved",
			input: "var a = 1; print a; a = 2;",
		},
		{
			name:  "same scope is distance zero",
			input: "{ var a = 1; print a; }",
			want:  []binding{{"a", 0}},
		},
		{
			name:  "nested blocks",
			input: "var g = 1; { var b = g; { print b; } }",
			want:  []binding{{"b", 1}},
		},
		{
			name:  "assignment",
			input: "{ var a; a = 2; }",
			want:  []binding{{"=a", 0}},
		},
		{
			name:  "parameters share the body scope",
			input: "fun f(x) { var y = x; return fun () { return x + y; }; }",
			want:  []binding{{"x", 0}, {"x", 1}, {"y", 1}},
		},
		{
			name:  "closure over block variable",
			input: "{ var a = 1; fun g() { a = a + 1; } }",
			want:  []binding{{"a", 1}, {"=a", 1}},
		},
		{
			name:  "local function can call itself",
			input: "{ fun loop(n) { if (n > 0) loop(n - 1); } }",
			want:  []binding{{"n", 0}, {"loop", 1}, {"n", 0}},
		},
		{
			name:  "this and super scopes",
			input: "class A < B { m() { return this.v + super.m(); } }",
			want:  []binding{{"this", 1}, {"super", 2}},
		},
		{
			name:  "this without superclass",
			input: "class A { m() { return fun () { return this; }; } }",
			want:  []binding{{"this", 2}},
		},
		{
			name:  "shadowing resolves innermost",
			input: "{ var a = 1; { var a = 2; print a; } print a; }",
			want:  []binding{{"a", 0}, {"a", 0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := resolve(t, tt.input)
			require.Empty(t, errs)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		errs  []string
	}{
		{
			name:  "top-level return",
			input: "return 1;",
			errs:  []string{"[line 1] Error at 'return': Can't return from top-level code."},
		},
		{
			name:  "return value from initializer",
			input: "class A { init() { return 1; } }",
			errs:  []string{"[line 1] Error at 'return': Can't return a value from an initializer."},
		},
		{
			name:  "bare return from initializer is fine",
			input: "class A { init() { return; } }",
		},
		{
			name:  "this at top level",
			input: "print this;",
			errs:  []string{"[line 1] Error at 'this': Can't use 'this' outside of a class."},
		},
		{
			name:  "this in plain function",
			input: "fun f() { return this; }",
			errs:  []string{"[line 1] Error at 'this': Can't use 'this' outside of a class."},
		},
		{
			name:  "super outside class",
			input: "super.x;",
			errs:  []string{"[line 1] Error at 'super': Can't use 'super' outside of a class."},
		},
		{
			name:  "super without superclass",
			input: "class A { m() { super.m(); } }",
			errs:  []string{"[line 1] Error at 'super': Can't use 'super' in a class with no superclass."},
		},
		{
			name:  "class inherits itself",
			input: "class A < A {}",
			errs:  []string{"[line 1] Error at 'A': A class can't inherit from itself."},
		},
		{
			name:  "duplicate local",
			input: "{ var a = 1; var a = 2; }",
			errs:  []string{"[line 1] Error at 'a': Already a variable named 'a' in this scope."},
		},
		{
			name:  "duplicate parameter",
			input: "fun f(a, a) {}",
			errs:  []string{"[line 1] Error at 'a': Already a variable named 'a' in this scope."},
		},
		{
			name:  "globals may be redeclared",
			input: "var a = 1; var a = 2;",
		},
		{
			name:  "local read in own initializer",
			input: "{ var a = a; }",
			errs:  []string{"[line 1] Error at 'a': Can't read local variable in its own initializer."},
		},
		{
			name:  "global self reference is left to runtime",
			input: "var a = a;",
		},
		{
			name:  "resolution continues after an error",
			input: "return;\nprint this;",
			errs: []string{
				"[line 1] Error at 'return': Can't return from top-level code.",
				"[line 2] Error at 'this': Can't use 'this' outside of a class.",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := resolve(t, tt.input)
			assert.Equal(t, tt.errs, errs)
		})
	}
}

func TestResolveExpr(t *testing.T) {
	r := diag.NewReporter(nil, diag.ColorNever)
	prog := parser.New(lexer.Tokenize("this;", r), r).Parse()
	require.NotNil(t, prog.Expr)

	New(&recordingBinder{}, r).ResolveExpr(prog.Expr)
	assert.True(t, r.HadError())
}
