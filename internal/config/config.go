package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zx06/piu/internal/errors"
)

// Config 表示 piu.yaml 的扁平配置。
// 约束：优先级为 CLI > ENV > Config；未知键不保证往返保留。
type Config struct {
	EvenURL string `yaml:"even_url,omitempty"`
	OddHost string `yaml:"odd_host,omitempty"`

	// CACert: nil 表示未设置（默认校验 TLS），false 表示显式关闭校验。
	CACert *bool `yaml:"cacert,omitempty"`
}

// Load 读取配置文件。文件缺失或内容不是合法 YAML mapping 时返回空配置，
// 从不向调用方报错。
func Load(path string) Config {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// Save 整体覆写配置文件，按需创建父目录。
func Save(cfg Config, path string) *errors.PiuError {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errors.Wrap(errors.CodeCfgInvalid, "failed to create config directory", map[string]any{"path": dir}, err)
		}
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, "failed to marshal config", nil, err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return errors.Wrap(errors.CodeCfgInvalid, "failed to write config file", map[string]any{"path": path}, err)
	}
	return nil
}

// DefaultPath 返回默认配置文件路径：<user config dir>/piu/piu.yaml。
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return filepath.Join("piu", "piu.yaml")
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "piu", "piu.yaml")
}
