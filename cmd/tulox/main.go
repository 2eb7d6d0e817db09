package main

import (
	"fmt"
	"os"

	"github.com/tangzhangming/tulox/internal/i18n"
)

const version = "0.1.0"

// 进程退出码
const (
	exitUsage   = 64
	exitStatic  = 65
	exitRuntime = 70
	exitIOError = 74
)

func main() {
	// 初始化国际化
	i18n.Init()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitUsage)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runCmd(os.Args[2:]))
	case "repl":
		os.Exit(replCmd(os.Args[2:]))
	case "tokens":
		os.Exit(tokensCmd(os.Args[2:]))
	case "ast":
		os.Exit(astCmd(os.Args[2:]))
	case "version":
		fmt.Println("tulox version", version)
	case "help":
		printUsage()
	default:
		printError(i18n.T(i18n.MsgUnknownCommand, os.Args[1]))
		printUsage()
		os.Exit(exitUsage)
	}
}

func printUsage() {
	fmt.Println(i18n.T(i18n.MsgUsage))
	fmt.Println()
	fmt.Println(i18n.T(i18n.MsgCommands))
	fmt.Println(i18n.T(i18n.MsgCmdRun))
	fmt.Println(i18n.T(i18n.MsgCmdRepl))
	fmt.Println(i18n.T(i18n.MsgCmdTokens))
	fmt.Println(i18n.T(i18n.MsgCmdAst))
	fmt.Println(i18n.T(i18n.MsgCmdVersion))
	fmt.Println(i18n.T(i18n.MsgCmdHelp))
	fmt.Println()
	fmt.Println(i18n.T(i18n.MsgUseHelp))
}

// 辅助打印函数
func printError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}
