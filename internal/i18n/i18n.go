package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// LocaleZhCN 简体中文
	LocaleZhCN = "zh-CN"
	// LocaleEnUS 英文
	LocaleEnUS = "en-US"
	// DefaultLocale 默认语言
	DefaultLocale = LocaleZhCN
)

// supportedLocales 顺序与 localeMatcher 的候选顺序一致，首项为默认语言
var supportedLocales = []string{LocaleZhCN, LocaleEnUS}

var localeMatcher = language.NewMatcher([]language.Tag{
	language.MustParse(LocaleZhCN),
	language.MustParse(LocaleEnUS),
})

// ResolveLocale 从请求中解析语言，优先 query 参数 lang，其次按权重匹配 Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if lang := NormalizeLocale(c.Query("lang")); lang != "" {
		return lang
	}
	tags, _, err := language.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	if lang := matchLocale(tags...); lang != "" {
		return lang
	}
	return DefaultLocale
}

// NormalizeLocale 将语言标签映射到支持的语言，无法识别时返回空串
func NormalizeLocale(tag string) string {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return ""
	}
	parsed, err := language.Parse(trimmed)
	if err != nil {
		return ""
	}
	return matchLocale(parsed)
}

func matchLocale(tags ...language.Tag) string {
	_, index, confidence := localeMatcher.Match(tags...)
	if confidence == language.No || index < 0 || index >= len(supportedLocales) {
		return ""
	}
	return supportedLocales[index]
}

// T 翻译消息，缺失时回退默认语言，再回退为 key 本身
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译带参数的消息
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
