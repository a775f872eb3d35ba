package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrPermissionDenied marks a write rejected by a row-level security policy
// or a missing grant. Callers match it with errors.Is.
var ErrPermissionDenied = errors.New("permission denied by row-level policy")

// TranslateBackendError maps known Postgres error codes onto domain error
// kinds. Unknown codes, and errors that are not Postgres errors at all, pass
// through unchanged.
func TranslateBackendError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.InsufficientPrivilege:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, pgErr.Message)
	}

	return err
}

// IsPermissionDenied reports whether err is a policy rejection after
// translation.
func IsPermissionDenied(err error) bool {
	return errors.Is(TranslateBackendError(err), ErrPermissionDenied)
}
