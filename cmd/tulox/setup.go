package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/tangzhangming/tulox/internal/config"
	"github.com/tangzhangming/tulox/internal/diag"
	"github.com/tangzhangming/tulox/internal/i18n"
	"github.com/tangzhangming/tulox/internal/lox"
)

// commonFlags run 和 repl 共用的选项
type commonFlags struct {
	debug      *bool
	configPath *string
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		debug:      fs.Bool("debug", false, i18n.T(i18n.MsgOptDebug)),
		configPath: fs.String("config", "", i18n.T(i18n.MsgOptConfig)),
	}
}

// environment 一次命令执行所需的配置、日志和诊断输出
type environment struct {
	cfg      *config.Config
	logger   *slog.Logger
	reporter *diag.Reporter
}

// setup 加载配置并据此初始化语言、日志和诊断输出
// startDir 为向上查找 tulox.toml 的起点
func setup(flags commonFlags, startDir string) (*environment, error) {
	cfg, path, err := loadConfig(*flags.configPath, startDir)
	if err != nil {
		return nil, err
	}

	if lang := i18n.ParseLanguage(cfg.Diagnostics.Language); lang != "" {
		i18n.SetLanguage(lang)
	}

	level, _ := config.ParseLevel(cfg.Log.Level)
	if *flags.debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if path != "" {
		logger.Info(i18n.T(i18n.MsgUsingConfig, path))
	} else {
		logger.Info(i18n.T(i18n.MsgNoConfig))
	}

	mode := diag.ColorMode(cfg.Diagnostics.Color)
	switch mode {
	case diag.ColorAlways:
		color.NoColor = false
	case diag.ColorNever:
		color.NoColor = true
	}

	return &environment{
		cfg:      cfg,
		logger:   logger,
		reporter: diag.NewReporter(os.Stderr, mode),
	}, nil
}

func loadConfig(explicit, startDir string) (*config.Config, string, error) {
	if explicit != "" {
		cfg, err := config.Load(explicit)
		if err != nil {
			return nil, "", &configError{path: explicit, err: err}
		}
		return cfg, explicit, nil
	}

	cfg, path, err := config.FindAndLoad(startDir)
	if err != nil {
		return nil, "", &configError{path: path, err: err}
	}
	return cfg, path, nil
}

// newSession 按配置创建解释会话，print 输出到标准输出
func (env *environment) newSession() *lox.Session {
	session := lox.NewSession(os.Stdout, env.reporter)
	session.Interpreter().SetLogger(env.logger)
	session.Interpreter().SetMaxCallDepth(env.cfg.Runtime.MaxCallDepth)
	env.logger.Debug("session ready", slog.Int("max_call_depth", session.Interpreter().MaxCallDepth()))
	return session
}

// readSource 读取脚本文件
func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &readFileError{path: path, err: err}
	}
	return string(data), nil
}

// scriptDir 脚本所在目录的绝对路径
func scriptDir(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Dir(path)
	}
	return filepath.Dir(abs)
}

// inputUsage 单文件子命令的帮助信息
func inputUsage(fs *flag.FlagSet, usage, description string) func() {
	return func() {
		fmt.Println(usage)
		fmt.Println()
		fmt.Println(description)
		fmt.Println()
		fmt.Println("Arguments:")
		fmt.Println(i18n.T(i18n.MsgArgInput))
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}
}
