package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tangzhangming/tulox/internal/diag"
	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/lexer"
	"github.com/tangzhangming/tulox/internal/parser"
)

// astCmd 打印语法树
func astCmd(args []string) int {
	fs := flag.NewFlagSet("ast", flag.ContinueOnError)
	fs.Usage = inputUsage(fs, i18n.T(i18n.MsgAstUsage), i18n.T(i18n.MsgAstDescription))

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
	prog := parser.New(lexer.Tokenize(source, reporter), reporter).Parse()
	if reporter.HadError() {
		return exitStatic
	}

	fmt.Println(parser.PrintProgram(prog))
	return 0
}
