package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/rishiboppana/stayhub/internal/domain"
	"github.com/stretchr/testify/assert"
)

func pqErr(code, constraint string) *pq.Error {
	return &pq.Error{Code: pq.ErrorCode(code), Constraint: constraint}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		unavailable bool
	}{
		{"bad conn", driver.ErrBadConn, true},
		{"deadline", fmt.Errorf("wrapped: %w", context.DeadlineExceeded), true},
		{"connection failure", pqErr("08006", ""), true},
		{"too many connections", pqErr("53300", ""), true},
		{"admin shutdown", pqErr("57P01", ""), true},
		{"syntax error", pqErr("42601", ""), false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify("op", tt.err)
			assert.Equal(t, tt.unavailable, errors.Is(err, domain.ErrStoreUnavailable))
			assert.Contains(t, err.Error(), "op: ")
		})
	}
}

func TestTranslateWrite(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"exclusion", pqErr(codeExclusionViolation, "bookings_no_double_accept"), domain.ErrDatesUnavailable},
		{"traveler fk", pqErr(codeForeignKeyViolation, "bookings_user_id_fkey"), domain.ErrUserNotFound},
		{"property fk", pqErr(codeForeignKeyViolation, "bookings_property_id_fkey"), domain.ErrPropertyNotFound},
		{"interval check", pqErr(codeCheckViolation, "bookings_interval_check"), domain.ErrInvalidInterval},
		{"other check", pqErr(codeCheckViolation, "bookings_guests_check"), domain.ErrValidation},
		{"email taken", pqErr(codeUniqueViolation, "users_email_key"), domain.ErrEmailTaken},
		{"unique", pqErr(codeUniqueViolation, "properties_pkey"), domain.ErrValidation},
		{"unavailable", pqErr("08003", ""), domain.ErrStoreUnavailable},
		{"driver", driver.ErrBadConn, domain.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, translateWrite("write", tt.err), tt.want)
		})
	}
}
