package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/lox"
)

// replCmd 交互式解释器
func replCmd(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	flags := addCommonFlags(fs)
	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgReplUsage))
		fmt.Println()
		fmt.Println(i18n.T(i18n.MsgReplDescription))
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cwd, err := os.Getwd()
	if err != nil {
		printError(i18n.T(i18n.ErrCannotGetCwd, err))
		return exitUsage
	}

	env, err := setup(flags, cwd)
	if err != nil {
		printError(err.Error())
		return exitUsage
	}

	fmt.Println(i18n.T(i18n.MsgReplBanner, version))

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := env.cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	echo := color.New(color.FgCyan)
	session := env.newSession()

	for {
		line, err := ln.Prompt(env.cfg.Repl.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			// Ctrl+C 放弃当前输入
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(trimmed, ":") {
			var quit bool
			session, quit = handleReplCommand(env, session, trimmed)
			if quit {
				break
			}
			continue
		}

		// 每行输入前清除错误，后面的输入不受前面错误的影响
		session.Reset()
		if value, ok := session.Run(line); ok {
			echo.Println(value)
		}
	}

	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return 0
}

// handleReplCommand 处理以 ':' 开头的命令，返回可能被替换的会话和是否退出
func handleReplCommand(env *environment, session *lox.Session, line string) (*lox.Session, bool) {
	switch strings.ToLower(strings.Fields(line)[0]) {
	case ":help":
		fmt.Println(i18n.T(i18n.MsgReplHelp))
	case ":quit", ":exit":
		return session, true
	case ":reset":
		env.reporter.Reset()
		session = env.newSession()
		fmt.Println(i18n.T(i18n.MsgReplReset))
	default:
		fmt.Println(i18n.T(i18n.MsgReplUnknown))
	}
	return session, false
}
