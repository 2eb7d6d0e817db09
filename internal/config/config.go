package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tangzhangming/tulox/internal/interpreter"
)

// FileName 配置文件名
const FileName = "tulox.toml"

// Config tulox 配置
type Config struct {
	Repl        ReplConfig        `toml:"repl"`
	Runtime     RuntimeConfig     `toml:"runtime"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`
	Log         LogConfig         `toml:"log"`
}

// ReplConfig 交互模式配置
type ReplConfig struct {
	Prompt  string `toml:"prompt"`  // 提示符
	History string `toml:"history"` // 历史文件名，位于用户主目录；为空时不保存历史
}

// RuntimeConfig 解释器运行配置
type RuntimeConfig struct {
	MaxCallDepth int `toml:"max_call_depth"` // 调用栈深度上限
}

// DiagnosticsConfig 错误输出配置
type DiagnosticsConfig struct {
	Color    string `toml:"color"`    // auto | always | never
	Language string `toml:"language"` // 为空时按环境变量检测
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `toml:"level"` // debug | info | warn | error
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Repl: ReplConfig{
			Prompt:  "> ",
			History: ".tulox_history",
		},
		Runtime: RuntimeConfig{
			MaxCallDepth: interpreter.DefaultMaxCallDepth,
		},
		Diagnostics: DiagnosticsConfig{
			Color: "auto",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// FindAndLoad 从指定目录向上查找 tulox.toml 并加载
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，返回默认配置
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找 tulox.toml
func FindConfigFile(startDir string) string {
	dir := startDir

	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件，文件中未出现的项保持默认值
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate 检查取值范围
func (c *Config) Validate() error {
	switch c.Diagnostics.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("diagnostics.color: unknown mode %q", c.Diagnostics.Color)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Runtime.MaxCallDepth < 0 {
		return fmt.Errorf("runtime.max_call_depth: must not be negative, got %d", c.Runtime.MaxCallDepth)
	}
	if c.Runtime.MaxCallDepth > interpreter.MaxCallDepthLimit {
		return fmt.Errorf("runtime.max_call_depth: must not exceed %d, got %d",
			interpreter.MaxCallDepthLimit, c.Runtime.MaxCallDepth)
	}
	return nil
}

// HistoryPath 历史文件的完整路径，未配置或取不到主目录时返回空
func (c *Config) HistoryPath() string {
	if c.Repl.History == "" {
		return ""
	}
	if filepath.IsAbs(c.Repl.History) {
		return c.Repl.History
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, c.Repl.History)
}

// ParseLevel 把日志级别名转换为 slog.Level，空字符串视为 warn
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("log.level: unknown level %q", name)
}
