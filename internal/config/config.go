package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sushk2904/Innomatics-Resume-IQ/internal/constants"
	"github.com/sushk2904/Innomatics-Resume-IQ/internal/logger"
)

// ParserConfig 简历解析器配置
type ParserConfig struct {
	// 开放式日期区间使用的当前年份；为0时取系统时钟年份
	CurrentYear int `yaml:"current_year"`

	// 解析文本最短长度（字符数），低于该值判定为空内容
	MinTextLength int `yaml:"min_text_length"`
}

// Config 应用程序配置
type Config struct {
	// 日志配置
	Logger logger.Config `yaml:"logger"`

	// 解析器配置
	Parser ParserConfig `yaml:"parser"`
}

// DefaultConfig 返回带默认值的配置
func DefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			Level:  "info",
			Format: "pretty",
		},
		Parser: ParserConfig{
			CurrentYear:   0, // 0 表示使用系统时钟年份
			MinTextLength: constants.MinResumeTextLength,
		},
	}
}

// LoadConfig 从YAML文件加载配置，文件中未出现的字段保持默认值
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("无法解析配置文件路径 %s: %w", configPath, err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", absPath, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", absPath, err)
	}

	if cfg.Parser.MinTextLength <= 0 {
		cfg.Parser.MinTextLength = constants.MinResumeTextLength
	}

	return cfg, nil
}
