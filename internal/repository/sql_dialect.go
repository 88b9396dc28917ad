package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// likeEscapeChar LIKE 模式中的转义字符
const likeEscapeChar = `\`

// dbDialectName 获取数据库方言名称，默认按 sqlite 处理。
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// likeOperatorByDialect postgres 的 LIKE 区分大小写，改用 ILIKE；sqlite 两侧先做 Unicode 折叠再用 LIKE。
func likeOperatorByDialect(dialect string) string {
	if isPostgresDialect(dialect) {
		return "ILIKE"
	}
	return "LIKE"
}

func isPostgresDialect(dialect string) bool {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return true
	default:
		return false
	}
}

// likeColumnByDialect 非 postgres 方言下列值经 casefold 折叠，sqlite 自带的 LIKE 只折叠 ASCII
func likeColumnByDialect(dialect, column string) string {
	if isPostgresDialect(dialect) {
		return column
	}
	return fmt.Sprintf("%s(%s)", sqliteCaseFoldFunc, column)
}

// likePatternByDialect 构建与 likeColumnByDialect 对应的子串匹配模式
func likePatternByDialect(dialect, raw string) string {
	if isPostgresDialect(dialect) {
		return containsPattern(raw)
	}
	return containsPattern(foldCase(raw))
}

// escapeLike 转义用户输入中的 LIKE 通配符，使其按字面匹配。
func escapeLike(raw string) string {
	replacer := strings.NewReplacer(
		likeEscapeChar, likeEscapeChar+likeEscapeChar,
		"%", likeEscapeChar+"%",
		"_", likeEscapeChar+"_",
	)
	return replacer.Replace(raw)
}

// containsPattern 构建子串匹配模式。
func containsPattern(raw string) string {
	return "%" + escapeLike(raw) + "%"
}

// buildLikeCondition 构建多列 OR 连接的 LIKE 条件，并返回参数数量。
func buildLikeCondition(dialect string, columns ...string) (string, int) {
	operator := likeOperatorByDialect(dialect)
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		trimmed := strings.TrimSpace(column)
		if trimmed == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s ? ESCAPE '%s'", likeColumnByDialect(dialect, trimmed), operator, likeEscapeChar))
	}
	return strings.Join(parts, " OR "), len(parts)
}

// repeatLikeArgs 生成重复的 LIKE 参数列表。
func repeatLikeArgs(like string, count int) []interface{} {
	args := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		args = append(args, like)
	}
	return args
}
