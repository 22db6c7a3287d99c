package storage

import (
	"cartscan/pkg/domain"
	"context"
)

// ScanEventUpdates describes a set of optional fields that can be applied to
// pending scan events during an update. Only non-nil fields will be updated.
type ScanEventUpdates struct {
	// Status is the new status to set for the event.
	Status domain.ScanEventStatus
	// ProductID, when provided, records the resolved catalog product id.
	ProductID *string
	// ProductName, when provided, records the resolved catalog product name.
	ProductName *string
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// MaxAttempts, when provided alongside a Failed status, ensures that status
	// is only updated to Failed if the current attempts after increment would
	// reach this threshold. A value <= 0 disables this guard.
	MaxAttempts int
}

// ScanEventStorage defines persistence operations for ingested scan events.
// Implementations should handle soft-deletes where applicable.
type ScanEventStorage interface {
	// StoreScanEvents inserts one or more scan events and returns the stored
	// rows as they exist in the database (including generated fields).
	StoreScanEvents(ctx context.Context, events ...domain.ScanEvent) ([]domain.ScanEvent, error)
	// UpdatePendingScanEventsByCode updates all pending events for the given
	// normalized code using the provided field set.
	// Notes:
	// - Attempts is incremented by 1 and updated_at is set automatically.
	// - If Status is Failed and MaxAttempts > 0, status is only set to Failed
	//   when the attempts after increment would reach MaxAttempts; otherwise
	//   status remains Pending so the sync can be retried.
	UpdatePendingScanEventsByCode(ctx context.Context, code string, updates ScanEventUpdates) error
	// PendingScanEventCountByCode returns the number of pending events for the
	// given normalized code. Soft-deleted records are excluded.
	PendingScanEventCountByCode(ctx context.Context, code string) (int64, error)
	// RecentScanEvents returns the most recently ingested events, newest first,
	// excluding soft-deleted records.
	RecentScanEvents(ctx context.Context, limit uint) ([]domain.ScanEvent, error)
	// ClearScanEvents soft-deletes every visible event and reports how many
	// rows were affected.
	ClearScanEvents(ctx context.Context) (int64, error)
}
