package parser

import (
	"regexp"
	"strings"
)

// 归一化使用的固定模式，进程启动时编译一次
var (
	// 所有空白符（含换行、制表符）的连续段
	whitespaceRunPattern = regexp.MustCompile(`\s+`)

	// 允许集之外的字符：保留单词字符与 - . @ + ( ) / , ; 这些基本标点
	disallowedCharPattern = regexp.MustCompile(`[^\w\s\-.@+()/,;]`)

	// 连续空格（剔除字符后可能重新出现）
	multiSpacePattern = regexp.MustCompile(` +`)
)

// CleanText 将提取出的原始文本归一化为单行文本
// 步骤顺序是确定性的一部分：
// 1. 把所有空白段折叠为单个空格
// 2. 剔除允许集之外的字符（以空格替换）
// 3. 再次折叠空格（步骤2可能引入连续空格）
// 4. 去掉首尾空格
// 该函数没有失败路径；内容全部丢失由上游的空内容检查兜底
func CleanText(text string) string {
	text = whitespaceRunPattern.ReplaceAllString(text, " ")
	text = disallowedCharPattern.ReplaceAllString(text, " ")
	text = multiSpacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
