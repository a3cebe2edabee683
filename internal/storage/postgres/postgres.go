// internal/storage/postgres/postgres.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shoham404/Cost-Manager-REStful-Web-Services/internal/domain"
	"github.com/shoham404/Cost-Manager-REStful-Web-Services/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storage struct {
	db *pgxpool.Pool
}

func NewStorage(db *pgxpool.Pool) *Storage {
	return &Storage{db: db}
}

// === UserStorage ===

func (s *Storage) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	_, err := s.db.Exec(ctx, `
		INSERT INTO users (id, first_name, last_name, birthday, marital_status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, u.ID, u.FirstName, u.LastName, u.Birthday, u.MaritalStatus, u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, storage.ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	slog.Debug("User created", "id", u.ID)
	return &u, nil
}

func (s *Storage) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := s.db.QueryRow(ctx, `
		SELECT id, first_name, last_name, birthday, marital_status, created_at
		FROM users WHERE id = $1
	`, id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Birthday, &u.MaritalStatus, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	u.Birthday = u.Birthday.UTC()
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

func (s *Storage) TotalCost(ctx context.Context, userID string) (float64, error) {
	var total float64
	err := s.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(sum), 0) FROM costs WHERE userid = $1
	`, userID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total cost: %w", err)
	}
	return total, nil
}

// === CostStorage ===

func (s *Storage) CreateCost(ctx context.Context, c domain.CostEntry) (*domain.CostEntry, error) {
	c.ID = uuid.NewString()
	_, err := s.db.Exec(ctx, `
		INSERT INTO costs (id, description, category, userid, sum, date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, c.ID, c.Description, c.Category, c.UserID, c.Sum, c.Date)
	if err != nil {
		return nil, fmt.Errorf("create cost: %w", err)
	}

	slog.Debug("Cost created", "id", c.ID, "userid", c.UserID, "category", c.Category, "sum", c.Sum)
	return &c, nil
}

// CostsForRange returns the user's entries with date inside [from, to],
// ordered by (date, id) so that repeated reads feed the report builder the
// same sequence every time.
func (s *Storage) CostsForRange(ctx context.Context, userID string, from, to time.Time) ([]domain.CostEntry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, description, category, userid, sum, date
		FROM costs
		WHERE userid = $1 AND date >= $2 AND date <= $3
		ORDER BY date, id
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("query costs: %w", err)
	}
	defer rows.Close()

	var entries []domain.CostEntry
	for rows.Next() {
		var c domain.CostEntry
		if err := rows.Scan(&c.ID, &c.Description, &c.Category, &c.UserID, &c.Sum, &c.Date); err != nil {
			return nil, fmt.Errorf("scan cost: %w", err)
		}
		// Bucket items carry the UTC day-of-month regardless of the
		// session time zone.
		c.Date = c.Date.UTC()
		entries = append(entries, c)
	}
	return entries, rows.Err()
}

// === ReportStorage ===

// UpsertReport is the single-statement compare-and-swap behind the report
// cache: the unique index on (userid, year, month) routes a second report
// into the conditional update, which only fires when the payload differs.
// No row comes back when the stored payload is already byte-equal.
func (s *Storage) UpsertReport(ctx context.Context, userID string, year, month int, payload []byte) (bool, error) {
	var id string
	err := s.db.QueryRow(ctx, `
		INSERT INTO reports (id, userid, year, month, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (userid, year, month)
		DO UPDATE SET id = EXCLUDED.id, payload = EXCLUDED.payload, created_at = EXCLUDED.created_at
		WHERE reports.payload <> EXCLUDED.payload
		RETURNING id
	`, uuid.NewString(), userID, year, month, string(payload), time.Now().UTC()).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			slog.Debug("Report unchanged, stored copy reused", "userid", userID, "year", year, "month", month)
			return false, nil
		}
		return false, fmt.Errorf("upsert report: %w", err)
	}

	slog.Debug("Report stored", "id", id, "userid", userID, "year", year, "month", month)
	return true, nil
}

func (s *Storage) FindReport(ctx context.Context, userID string, year, month int) (*domain.MonthlyReport, error) {
	var r domain.MonthlyReport
	var payload string
	err := s.db.QueryRow(ctx, `
		SELECT id, userid, year, month, payload, created_at
		FROM reports WHERE userid = $1 AND year = $2 AND month = $3
	`, userID, year, month).Scan(&r.ID, &r.UserID, &r.Year, &r.Month, &payload, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find report: %w", err)
	}

	r.Payload = []byte(payload)
	r.CreatedAt = r.CreatedAt.UTC()
	return &r, nil
}
