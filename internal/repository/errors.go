package repository

import (
	"errors"
	"fmt"

	"addressbook/internal/domain"

	"github.com/go-sql-driver/mysql"
)

// MySQL error numbers for integrity violations
const (
	mysqlDuplicateEntry = 1062 // Unique key violation
	mysqlFKParentAbsent = 1452 // Insert/update references a missing parent row
	mysqlFKChildExists  = 1451 // Delete would orphan child rows
)

// translateError maps raw driver errors to the domain error taxonomy so callers
// never see driver types. Non-integrity errors pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry, mysqlFKParentAbsent, mysqlFKChildExists:
			return fmt.Errorf("%w: %s", domain.ErrConflict, myErr.Message)
		}
	}
	return err
}
