// internal/storage/storage.go
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/shoham404/Cost-Manager-REStful-Web-Services/internal/domain"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateUser = errors.New("user id already exists")
)

type UserStorage interface {
	CreateUser(ctx context.Context, u domain.User) (*domain.User, error)
	FindUserByID(ctx context.Context, id string) (*domain.User, error)
	TotalCost(ctx context.Context, userID string) (float64, error)
}

type CostStorage interface {
	CreateCost(ctx context.Context, c domain.CostEntry) (*domain.CostEntry, error)
	CostsForRange(ctx context.Context, userID string, from, to time.Time) ([]domain.CostEntry, error)
}

type ReportStorage interface {
	// UpsertReport atomically stores payload as the canonical report for
	// (userID, year, month). A byte-equal stored payload is left untouched
	// and changed is false; otherwise the stored report is replaced.
	UpsertReport(ctx context.Context, userID string, year, month int, payload []byte) (changed bool, err error)
	// FindReport exposes the stored report for a key. Request handling
	// never reads it (UpsertReport owns the reuse-or-replace decision);
	// it is the inspection seam for verifying cache behavior.
	FindReport(ctx context.Context, userID string, year, month int) (*domain.MonthlyReport, error)
}
