package repository

import (
	"database/sql/driver"

	gosqlite "github.com/glebarez/go-sqlite"
	"golang.org/x/text/cases"
)

// sqliteCaseFoldFunc sqlite 下按 Unicode 折叠大小写的自定义函数名
const sqliteCaseFoldFunc = "casefold"

// 自定义函数只对注册之后打开的连接生效，包初始化时注册可覆盖所有连接。
func init() {
	gosqlite.MustRegisterDeterministicScalarFunction(sqliteCaseFoldFunc, 1, sqliteCaseFold)
}

func sqliteCaseFold(_ *gosqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch value := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return foldCase(value), nil
	case []byte:
		return foldCase(string(value)), nil
	default:
		return value, nil
	}
}

// foldCase Unicode 大小写折叠，Caser 有状态，每次新建
func foldCase(raw string) string {
	return cases.Fold().String(raw)
}
