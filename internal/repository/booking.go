package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rishiboppana/stayhub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const bookingColumns = `b.id, b.property_id, b.user_id, b.check_in, b.check_out,
		b.guests, b.total_price, b.status, b.created_at, b.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return classify("begin tx", err)
	}
	defer tx.Rollback()

	// Блокируем объект: конкурентные брони одного объекта выполняются по очереди
	lockQuery := `SELECT id FROM properties WHERE id = $1 FOR UPDATE`
	var propertyID int64
	if err = tx.QueryRowContext(ctx, lockQuery, b.PropertyID).Scan(&propertyID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrPropertyNotFound
		}
		return classify("lock property", err)
	}

	existing, err := listByProperty(ctx, tx, b.PropertyID, domain.BlockingStatuses)
	if err != nil {
		return err
	}
	if domain.FindConflict(existing, b.Stay(), domain.BlockingStatuses) != nil {
		return domain.ErrDatesUnavailable
	}

	query := `INSERT INTO bookings (property_id, user_id, check_in, check_out, guests, total_price, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id`
	now := time.Now().UTC()
	if err = tx.QueryRowContext(
		ctx, query, b.PropertyID, b.TravelerID, b.CheckIn, b.CheckOut,
		b.Guests, b.TotalPrice, b.Status, now, now,
	).Scan(&b.ID); err != nil {
		return translateWrite("insert booking", err)
	}
	b.CreatedAt = now
	b.UpdatedAt = now

	if err = tx.Commit(); err != nil {
		return translateWrite("commit booking", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `, p.owner_id
			  FROM bookings b
			  JOIN properties p ON p.id = b.property_id
			  WHERE b.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, classify("get booking", err)
	}

	var b domain.Booking
	if err = scanBooking(row, &b, &b.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, classify("scan booking", err)
	}

	return &b, nil
}

func (r *BookingRepository) ListByProperty(ctx context.Context, propertyID int64, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  WHERE b.property_id = $1 AND b.status = ANY($2)
			  ORDER BY b.check_in`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, propertyID, pq.Array(statuses))
	if err != nil {
		return nil, classify("list bookings by property", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListByTraveler(ctx context.Context, travelerID int64) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `, p.owner_id, p.title, p.location
			  FROM bookings b
			  JOIN properties p ON p.id = b.property_id
			  WHERE b.user_id = $1
			  ORDER BY b.created_at DESC`

	return r.listWithProperty(ctx, "list bookings by traveler", query, travelerID)
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `, p.owner_id, p.title, p.location
			  FROM bookings b
			  JOIN properties p ON p.id = b.property_id
			  WHERE p.owner_id = $1
			  ORDER BY b.created_at DESC`

	return r.listWithProperty(ctx, "list bookings by owner", query, ownerID)
}

func (r *BookingRepository) listWithProperty(ctx context.Context, op, query string, id int64) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, classify(op, err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = scanBooking(rows, &b, &b.OwnerID, &b.PropertyTitle, &b.PropertyLocation); err != nil {
			return nil, classify("scan booking", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, classify("begin tx", err)
	}
	defer tx.Rollback()

	// Блокируем бронь и её объект, затем сверяем текущий статус
	lockQuery := `SELECT b.property_id, b.check_in, b.check_out, b.status
				  FROM bookings b
				  JOIN properties p ON p.id = b.property_id
				  WHERE b.id = $1
				  FOR UPDATE`
	var (
		current domain.Booking
		status  string
	)
	if err = tx.QueryRowContext(ctx, lockQuery, id).
		Scan(&current.PropertyID, &current.CheckIn, &current.CheckOut, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, classify("lock booking", err)
	}
	current.ID = id
	if current.Status, err = domain.ParseBookingStatus(status); err != nil {
		return nil, fmt.Errorf("lock booking: %w", err)
	}
	if current.Status != from {
		return nil, &domain.TransitionError{From: current.Status, To: to}
	}

	if to == domain.BookingStatusAccepted {
		accepted := []domain.BookingStatus{domain.BookingStatusAccepted}
		existing, err := listByProperty(ctx, tx, current.PropertyID, accepted)
		if err != nil {
			return nil, err
		}
		others := existing[:0]
		for _, o := range existing {
			if o.ID != id {
				others = append(others, o)
			}
		}
		if domain.FindConflict(others, current.Stay(), accepted) != nil {
			return nil, domain.ErrDatesUnavailable
		}
	}

	query := `UPDATE bookings b
			  SET status = $2, updated_at = $3
			  FROM properties p
			  WHERE b.id = $1 AND b.status = $4 AND p.id = b.property_id
			  RETURNING ` + bookingColumns + `, p.owner_id`

	var b domain.Booking
	row := tx.QueryRowContext(ctx, query, id, to, time.Now().UTC(), from)
	if err = scanBooking(row, &b, &b.OwnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.TransitionError{From: from, To: to}
		}
		return nil, translateWrite("update booking status", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, translateWrite("commit booking status", err)
	}

	return &b, nil
}

func (r *BookingRepository) CancelStale(ctx context.Context, before time.Time) ([]*domain.Booking, error) {
	query := `
        UPDATE bookings b
        SET status = $2, updated_at = NOW()
        FROM properties p
        WHERE p.id = b.property_id
          AND b.status = $1
          AND b.check_in < $3
        RETURNING ` + bookingColumns + `, p.owner_id`

	// запись не повторяем: повтор после успешного коммита вернул бы пустой список
	rows, err := r.db.Master.QueryContext(
		ctx, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled, before,
	)
	if err != nil {
		return nil, classify("cancel stale", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = scanBooking(rows, &b, &b.OwnerID); err != nil {
			return nil, classify("scan", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func listByProperty(ctx context.Context, q querier, propertyID int64, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings b
			  WHERE b.property_id = $1 AND b.status = ANY($2)`

	rows, err := q.QueryContext(ctx, query, propertyID, pq.Array(statuses))
	if err != nil {
		return nil, classify("list blocking bookings", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, classify("scan booking", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func scanBooking(s rowScanner, b *domain.Booking, extra ...any) error {
	var status string
	dest := append([]any{
		&b.ID, &b.PropertyID, &b.TravelerID, &b.CheckIn, &b.CheckOut,
		&b.Guests, &b.TotalPrice, &status, &b.CreatedAt, &b.UpdatedAt,
	}, extra...)
	if err := s.Scan(dest...); err != nil {
		return err
	}

	st, err := domain.ParseBookingStatus(status)
	if err != nil {
		return err
	}
	b.Status = st

	return nil
}
