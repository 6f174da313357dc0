package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	mysqlErrDuplicateEntry   = 1062
	mysqlErrForeignKeyParent = 1452
	mysqlErrDeadlock         = 1213
)

// isMySQLError reports whether err wraps a MySQL server error with the given number
func isMySQLError(err error, number uint16) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == number
}
