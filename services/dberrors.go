package services

import (
	"errors"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// IsUniqueViolation reports whether err is a uniqueness-constraint
// rejection from the backing store. This predicate is the only
// backend-specific detail the booking core depends on: any backend able
// to enforce uniqueness atomically can sit behind it.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		// 1062: ER_DUP_ENTRY
		return merr.Number == 1062
	}
	lower := strings.ToLower(err.Error())
	// sqlite reports "UNIQUE constraint failed: <table>.<column>"
	return strings.Contains(lower, "unique constraint") || strings.Contains(lower, "1062")
}
