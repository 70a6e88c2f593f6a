package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/sushk2904/Innomatics-Resume-IQ/internal/config"
	"github.com/sushk2904/Innomatics-Resume-IQ/internal/logger"
	"github.com/sushk2904/Innomatics-Resume-IQ/internal/processor"
	"github.com/sushk2904/Innomatics-Resume-IQ/internal/types"
)

// 命令行参数定义
var (
	filePath     string
	configPath   string
	outputFormat string
	savePath     string
	maxLen       int
)

func main() {
	pflag.StringVarP(&filePath, "file", "f", "", "简历文件路径 (.pdf/.docx/.doc) (必填)")
	pflag.StringVarP(&configPath, "config", "c", "", "配置文件路径 (可选)")
	pflag.StringVar(&outputFormat, "format", "text", "输出格式: text 或 json")
	pflag.StringVar(&savePath, "save", "", "将解析结果(JSON)保存到文件")
	pflag.IntVar(&maxLen, "maxlen", 1000, "text格式下显示的正文最大长度, -1 显示全部")
	pflag.Parse()

	if filePath == "" {
		fmt.Fprintln(os.Stderr, "错误: 必须提供简历文件路径, 使用 -f/--file 参数")
		pflag.Usage()
		os.Exit(1)
	}

	// 加载配置（可选），未提供配置文件时使用默认值
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	logger.Init(cfg.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	opts := []processor.ParserOption{
		processor.WithMinTextLength(cfg.Parser.MinTextLength),
	}
	if cfg.Parser.CurrentYear > 0 {
		opts = append(opts, processor.WithCurrentYear(cfg.Parser.CurrentYear))
	}

	resumeParser, err := processor.NewResumeParser(ctx, opts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("创建简历解析器失败")
	}

	profile, err := resumeParser.ParseFile(ctx, filePath)
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrUnsupportedFormat):
			logger.Error().Err(err).Msg("文件格式不支持, 仅接受 .pdf/.docx/.doc")
		case errors.Is(err, processor.ErrEmptyContent):
			logger.Error().Err(err).Msg("文档没有可用文本, 可能是扫描件或近乎空白的文档")
		default:
			logger.Error().Err(err).Msg("文件无法读取")
		}
		os.Exit(1)
	}

	switch outputFormat {
	case "json":
		if err := printJSON(profile); err != nil {
			logger.Fatal().Err(err).Msg("序列化解析结果失败")
		}
	case "text":
		printText(profile)
	default:
		fmt.Fprintf(os.Stderr, "错误: 未知输出格式 %q, 支持: text, json\n", outputFormat)
		os.Exit(1)
	}

	if savePath != "" {
		if err := saveJSON(profile, savePath); err != nil {
			logger.Fatal().Err(err).Str("path", savePath).Msg("保存解析结果失败")
		}
		logger.Info().Str("path", savePath).Msg("解析结果已保存")
	}
}

// printJSON 以JSON格式输出画像
func printJSON(profile *types.ResumeProfile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// printText 以可读文本输出画像
func printText(profile *types.ResumeProfile) {
	text := profile.Text
	if maxLen >= 0 && len(text) > maxLen {
		text = text[:maxLen] + "..."
	}

	fmt.Printf("词数: %d\n", profile.WordCount)
	fmt.Printf("工作年限: %.1f 年\n", profile.Experience)
	fmt.Printf("技能 (%d): %s\n", len(profile.Skills), strings.Join(profile.Skills, ", "))
	fmt.Printf("最高学历: %s\n", profile.Education.HighestDegree)
	fmt.Printf("学位: %s\n", strings.Join(profile.Education.Degrees, ", "))
	fmt.Printf("院校: %s\n", strings.Join(profile.Education.Institutions, "; "))
	fmt.Printf("邮箱: %s  电话: %s\n", profile.ContactInfo.Email, profile.ContactInfo.Phone)
	fmt.Printf("LinkedIn: %s  GitHub: %s\n", profile.ContactInfo.LinkedIn, profile.ContactInfo.GitHub)
	fmt.Printf("语言: %s\n", strings.Join(profile.Languages, ", "))

	fmt.Printf("项目 (%d):\n", len(profile.Projects))
	for _, p := range profile.Projects {
		fmt.Printf("  - %s\n", p)
	}
	fmt.Printf("证书 (%d):\n", len(profile.Certifications))
	for _, c := range profile.Certifications {
		fmt.Printf("  - %s\n", c)
	}
	fmt.Printf("荣誉 (%d):\n", len(profile.Achievements))
	for _, a := range profile.Achievements {
		fmt.Printf("  - %s\n", a)
	}

	fmt.Printf("正文:\n%s\n", text)
}

// saveJSON 将画像以JSON形式写入文件
func saveJSON(profile *types.ResumeProfile, path string) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
