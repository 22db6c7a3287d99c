package postgres

import (
	"cartscan/pkg/domain"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type PgScanEvent struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Code   string         `db:"code"`
	Title  sql.NullString `db:"title"`
	Status string         `db:"status"`

	ProductID   sql.NullString `db:"product_id"   goqu:"skipinsert"`
	ProductName sql.NullString `db:"product_name" goqu:"skipinsert"`
	Quantity    int            `db:"quantity"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgScanEvent) ToDomain() *domain.ScanEvent {
	return &domain.ScanEvent{
		ID:          domain.ScanEventID(p.ID),
		Code:        p.Code,
		Title:       p.Title.String,
		Status:      domain.ScanEventStatus(p.Status),
		ProductID:   p.ProductID.String,
		ProductName: p.ProductName.String,
		Quantity:    p.Quantity,
		Attempts:    p.Attempts,
		LastError:   p.LastError.String,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}
}

func (p *PgScanEvent) FromDomain(event domain.ScanEvent) {
	*p = PgScanEvent{
		ID:     uuid.UUID(event.ID),
		Code:   event.Code,
		Status: string(event.Status),
		Title: sql.NullString{
			String: event.Title,
			Valid:  event.Title != "",
		},
		ProductID: sql.NullString{
			String: event.ProductID,
			Valid:  event.ProductID != "",
		},
		ProductName: sql.NullString{
			String: event.ProductName,
			Valid:  event.ProductName != "",
		},
		Quantity: event.Quantity,
		Attempts: event.Attempts,
		LastError: sql.NullString{
			String: event.LastError,
			Valid:  event.LastError != "",
		},
		CreatedAt: event.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  event.UpdatedAt,
			Valid: !event.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  event.DeletedAt,
			Valid: !event.DeletedAt.IsZero(),
		},
	}
}

func domainScanEventsToPg(events []domain.ScanEvent) []PgScanEvent {
	out := make([]PgScanEvent, len(events))
	for i := range out {
		out[i].FromDomain(events[i])
	}

	return out
}

func pgScanEventsToDomain(events []PgScanEvent) []domain.ScanEvent {
	out := make([]domain.ScanEvent, 0, len(events))
	for _, event := range events {
		out = append(out, *event.ToDomain())
	}

	return out
}
