package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"
	"github.com/rishiboppana/stayhub/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeExclusionViolation  = "23P01"
)

// classify оборачивает ошибку драйвера; недоступность хранилища помечается ErrStoreUnavailable.
func classify(op string, err error) error {
	if unavailable(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func unavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Code.Class() {
		case "08", "53", "57":
			return true
		}
		return false
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// translateWrite maps constraint violations raised by inserts and updates to domain errors.
func translateWrite(op string, err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return classify(op, err)
	}

	switch pgErr.Code {
	case codeExclusionViolation:
		return domain.ErrDatesUnavailable
	case codeForeignKeyViolation:
		switch pgErr.Constraint {
		case "bookings_user_id_fkey", "properties_owner_id_fkey":
			return domain.ErrUserNotFound
		default:
			return domain.ErrPropertyNotFound
		}
	case codeCheckViolation:
		if pgErr.Constraint == "bookings_interval_check" {
			return domain.ErrInvalidInterval
		}
		return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.Message)
	case codeUniqueViolation:
		if pgErr.Constraint == "users_email_key" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.Detail)
	}

	return classify(op, err)
}
