package postgres

import (
	"cartscan/pkg/domain"
	"cartscan/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	scanEventsTable = "scan_events"
)

func (p *PgSQL) StoreScanEvents(ctx context.Context,
	events ...domain.ScanEvent) ([]domain.ScanEvent, error) {
	if len(events) == 0 {
		return nil, nil
	}

	var result []PgScanEvent
	if err := p.Builder.Insert(scanEventsTable).
		Rows(domainScanEventsToPg(events)).
		Returning(&PgScanEvent{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store scan events into pg: %w", err)
	}

	return pgScanEventsToDomain(result), nil
}

// UpdatePendingScanEventsByCode updates all pending events for the given code
// with the provided fields. Only non-nil fields from updates are set. Attempts
// is incremented by 1 and updated_at is set. A Failed status with MaxAttempts
// set only sticks once the incremented attempt count reaches the threshold;
// below it the event stays pending for another attempt.
func (p *PgSQL) UpdatePendingScanEventsByCode(ctx context.Context,
	code string,
	updates storage.ScanEventUpdates) error {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
		"status":     string(updates.Status),
	}
	if updates.Status == domain.ScanEventFailed && updates.MaxAttempts > 0 {
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE ? END",
			updates.MaxAttempts,
			string(domain.ScanEventFailed),
			string(domain.ScanEventPending))
	}
	if updates.ProductID != nil {
		rec["product_id"] = *updates.ProductID
	}
	if updates.ProductName != nil {
		rec["product_name"] = *updates.ProductName
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	_, err := p.Builder.Update(scanEventsTable).
		Set(rec).Where(
		goqu.I("code").Eq(code),
		goqu.I("status").Eq(string(domain.ScanEventPending)),
		goqu.I("deleted_at").IsNull(),
	).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update pending scan events by code in pg: %w", err)
	}

	return nil
}

// PendingScanEventCountByCode returns the number of pending events for the
// given code, excluding soft-deleted rows.
func (p *PgSQL) PendingScanEventCountByCode(ctx context.Context, code string) (int64, error) {
	count, err := p.Builder.From(scanEventsTable).
		Where(
			goqu.I("code").Eq(code),
			goqu.I("status").Eq(string(domain.ScanEventPending)),
			goqu.I("deleted_at").IsNull(),
		).
		CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count pending scan events by code in pg: %w", err)
	}

	return count, nil
}

// RecentScanEvents returns the newest visible events, ordered by ingestion
// time descending.
func (p *PgSQL) RecentScanEvents(ctx context.Context, limit uint) ([]domain.ScanEvent, error) {
	var rows []PgScanEvent
	if err := p.Builder.From(scanEventsTable).
		Where(goqu.I("deleted_at").IsNull()).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch recent scan events from pg: %w", err)
	}

	return pgScanEventsToDomain(rows), nil
}

// ClearScanEvents soft-deletes every visible event.
func (p *PgSQL) ClearScanEvents(ctx context.Context) (int64, error) {
	res, err := p.Builder.Update(scanEventsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("deleted_at").IsNull()).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not clear scan events in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not read affected rows: %w", err)
	}

	return affected, nil
}
