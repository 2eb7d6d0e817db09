package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/tangzhangming/tulox/internal/diag"
	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/lexer"
)

// tokensCmd 以表格形式打印词法分析结果
func tokensCmd(args []string) int {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.Usage = inputUsage(fs, i18n.T(i18n.MsgTokensUsage), i18n.T(i18n.MsgTokensDescription))

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		return exitUsage
	}

	source, err := readSource(fs.Arg(0))
	if err != nil {
		printError(err.Error())
		return exitIOError
	}

	reporter := diag.NewReporter(os.Stderr, diag.ColorAuto)
	tokens := lexer.Tokenize(source, reporter)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Line", "Type", "Lexeme", "Literal"})
	table.SetAutoWrapText(false)
	for _, tok := range tokens {
		table.Append([]string{
			strconv.Itoa(tok.Line),
			tok.Type.String(),
			tok.Lexeme,
			literalColumn(tok.Literal),
		})
	}
	table.Render()

	if reporter.HadError() {
		return exitStatic
	}
	return 0
}

func literalColumn(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return strconv.Quote(x)
	}
	return ""
}
