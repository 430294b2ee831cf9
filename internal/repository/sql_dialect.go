package repository

import (
	"strings"

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

// monthExpr 构建取日期月份的表达式，兼容 sqlite 与 postgres。
func monthExpr(db *gorm.DB, column string) string {
	switch dbDialectName(db) {
	case "postgres", "postgresql":
		return "CAST(EXTRACT(MONTH FROM " + column + ") AS INTEGER)"
	default:
		return "CAST(strftime('%m', " + column + ") AS INTEGER)"
	}
}

// yearExpr 构建取日期年份的表达式，兼容 sqlite 与 postgres。
func yearExpr(db *gorm.DB, column string) string {
	switch dbDialectName(db) {
	case "postgres", "postgresql":
		return "CAST(EXTRACT(YEAR FROM " + column + ") AS INTEGER)"
	default:
		return "CAST(strftime('%Y', " + column + ") AS INTEGER)"
	}
}
