package extractor

import (
	"regexp"
	"strings"

	"github.com/sushk2904/Innomatics-Resume-IQ/internal/constants"
)

// 证书匹配的四族模式：通用表述、云厂商、知名资质缩写、传统厂商
// 均以行为边界（[^\n]），依赖原始文本中保留的换行
var certificationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:certified|certification|certificate)\s+(?:in\s+)?([^\n]{5,80})`),
	regexp.MustCompile(`(?i)([^\n]*(?:aws|azure|google cloud|gcp)[^\n]*(?:certified|certification)[^\n]*)`),
	regexp.MustCompile(`(?i)([^\n]*(?:pmp|scrum|agile|cissp|ceh)[^\n]*)`),
	regexp.MustCompile(`(?i)([^\n]*(?:oracle|microsoft|cisco|comptia)[^\n]*(?:certified|certification)[^\n]*)`),
}

// ExtractCertifications 从原始文本中提取证书资质
// 匹配结果按长度过滤（5到100个字符之间），去重后最多保留8条
func ExtractCertifications(text string) []string {
	certifications := make([]string, 0)
	seen := make(map[string]struct{})

	for _, pattern := range certificationPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			cert := strings.TrimSpace(m[1])
			if len(cert) <= 5 || len(cert) >= 100 {
				continue
			}
			if _, ok := seen[cert]; ok {
				continue
			}
			seen[cert] = struct{}{}
			certifications = append(certifications, cert)
		}
	}

	if len(certifications) > constants.MaxCertifications {
		certifications = certifications[:constants.MaxCertifications]
	}
	return certifications
}
