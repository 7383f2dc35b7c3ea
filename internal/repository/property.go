package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/rishiboppana/stayhub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const propertyColumns = `id, owner_id, title, type, location, description, price_per_night,
		bedrooms, bathrooms, max_guests, amenities, images, created_at`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type PropertyRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPropertyRepo(db *dbpg.DB) *PropertyRepository {
	return &PropertyRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	query := `INSERT INTO properties (owner_id, title, type, location, description, price_per_night,
				  bedrooms, bathrooms, max_guests, amenities, images, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			  RETURNING id`
	now := time.Now().UTC()
	err := r.db.Master.QueryRowContext(
		ctx, query,
		p.OwnerID, p.Title, p.Type, p.Location, p.Description, p.PricePerNight,
		p.Bedrooms, p.Bathrooms, p.MaxGuests, pq.Array(nonNil(p.Amenities)), pq.Array(nonNil(p.Images)), now,
	).Scan(&p.ID)
	if err != nil {
		return translateWrite("insert property", err)
	}
	p.CreatedAt = now

	return nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + `
			  FROM properties
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, classify("get property", err)
	}

	var p domain.Property
	if err = scanProperty(row, &p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, classify("scan property", err)
	}

	return &p, nil
}

func (r *PropertyRepository) Search(ctx context.Context, f domain.PropertyFilter) ([]*domain.Property, error) {
	f.Normalize()

	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}

	if f.Location != "" {
		add("location ILIKE $%d", "%"+likeEscaper.Replace(f.Location)+"%")
	}
	if f.MinPrice > 0 {
		add("price_per_night >= $%d", f.MinPrice)
	}
	if f.MaxPrice > 0 {
		add("price_per_night <= $%d", f.MaxPrice)
	}
	if f.Guests > 0 {
		add("(max_guests = 0 OR max_guests >= $%d)", f.Guests)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT ` + propertyColumns + ` FROM properties`)
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}
	args = append(args, f.Limit, f.Offset())
	fmt.Fprintf(&sb, " ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, sb.String(), args...)
	if err != nil {
		return nil, classify("search properties", err)
	}
	defer rows.Close()

	var res []*domain.Property
	for rows.Next() {
		var p domain.Property
		if err = scanProperty(rows, &p); err != nil {
			return nil, classify("scan property", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}

func scanProperty(s rowScanner, p *domain.Property) error {
	return s.Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.Type, &p.Location, &p.Description, &p.PricePerNight,
		&p.Bedrooms, &p.Bathrooms, &p.MaxGuests, pq.Array(&p.Amenities), pq.Array(&p.Images), &p.CreatedAt,
	)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
