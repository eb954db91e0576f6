package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// MySQL ER_DUP_ENTRY
const mysqlErrDupEntry = 1062

// IsDuplicateEntry reports whether err is a unique-constraint violation,
// either as GORM's translated sentinel or as the raw driver error.
func IsDuplicateEntry(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDupEntry
	}

	return false
}
