package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/eshop-next/internal/models"

	"gorm.io/gorm"
)

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

func isPostgresDialect(dialect string) bool {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return true
	default:
		return false
	}
}

// foldedContainsCondition 对已折叠的检索列做包含匹配，参数需经 foldedContainsArg 处理。
// 两侧都在 Go 中折叠，避免依赖数据库的大小写规则（sqlite 只折叠 ASCII）。
func foldedContainsCondition(column string) string {
	return fmt.Sprintf("%s LIKE ? ESCAPE '\\'", column)
}

// foldedContainsArg 折叠关键字、转义通配符并包裹为 %keyword%
func foldedContainsArg(keyword string) string {
	return "%" + escapeLikeKeyword(models.FoldSearchText(keyword)) + "%"
}

func escapeLikeKeyword(keyword string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(keyword)
}

// serializableTxOptions 下单事务隔离级别：postgres 显式使用 SERIALIZABLE，sqlite 事务本身即串行化。
func serializableTxOptions(db *gorm.DB) []*sql.TxOptions {
	if isPostgresDialect(dbDialectName(db)) {
		return []*sql.TxOptions{{Isolation: sql.LevelSerializable}}
	}
	return nil
}
