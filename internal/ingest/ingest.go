// Package ingest accepts scanned codes, journals them and enqueues the cart
// synchronization work.
package ingest

import (
	"cartscan/internal/worker"
	"cartscan/pkg/barcode"
	"cartscan/pkg/domain"
	"cartscan/pkg/foodfacts"
	"cartscan/pkg/logger"
	"cartscan/pkg/metrics"
	"cartscan/pkg/serrors"
	"cartscan/pkg/storage"
	"cartscan/pkg/ttlset"
	"context"
	"errors"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// TitleSource resolves a human-readable title for a barcode. Lookups are best
// effort; failures never block ingestion.
type TitleSource interface {
	Lookup(ctx context.Context, code string) (foodfacts.Product, bool, error)
}

// Journal records ingested scans in an external list, e.g. Google Tasks.
type Journal interface {
	AddEntry(ctx context.Context, title, notes string) error
}

// Options configure the ingestion service.
type Options struct {
	// RecentLimit caps how many events Recent returns.
	RecentLimit uint
	// MaxSyncAttempts is handed to the cart sync jobs this service enqueues.
	MaxSyncAttempts int
	// SyncWindow is the uniqueness period for cart-sync jobs: repeat scans of
	// a code within the window collapse into the one job already queued.
	SyncWindow time.Duration
	// CartSyncEnabled controls whether ingested scans are enqueued for cart
	// synchronization at all.
	CartSyncEnabled bool
}

// Result describes the outcome of one ingested scan.
type Result struct {
	// Event is the stored scan event.
	Event domain.ScanEvent
	// Duplicate is true when the code was scanned again within the dedupe
	// window and no cart sync was enqueued.
	Duplicate bool
	// Enqueued is true when a new cart sync job was inserted for the code.
	Enqueued bool
	// PendingSyncs is the number of earlier scans of this code still awaiting
	// cart synchronization. Only populated for duplicates.
	PendingSyncs int64
}

// Service ingests scanned codes: it normalizes, deduplicates, looks up a
// title, persists a scan event, journals it and enqueues a cart sync job.
type Service struct {
	storage storage.Storage
	dedupe  *ttlset.Set
	titles  TitleSource
	journal Journal
	metrics *metrics.Ingest
	opts    Options
}

// New constructs a Service. titles and journal may be nil to disable the
// title lookup and the external journal.
func New(strg storage.Storage,
	dedupe *ttlset.Set,
	titles TitleSource,
	journal Journal,
	m *metrics.Ingest,
	opts Options) *Service {
	return &Service{
		storage: strg,
		dedupe:  dedupe,
		titles:  titles,
		journal: journal,
		metrics: m,
		opts:    opts,
	}
}

// Scan is one scan submission: the raw code plus optional caller-supplied
// display title and quantity.
type Scan struct {
	// Raw is the scanned value before normalization.
	Raw string
	// Title overrides the looked-up display title when non-empty.
	Title string
	// Quantity is the number of units; values < 1 are treated as 1.
	Quantity int
}

// Ingest processes one scanned code. The raw value is normalized to digits
// first; a code scanned again within the dedupe window is recorded as a
// duplicate and triggers no side effects.
func (s *Service) Ingest(ctx context.Context, scan Scan) (Result, error) {
	code := barcode.Normalize(scan.Raw)
	if code == "" {
		return Result{}, serrors.With(serrors.ErrBadRequest, "scanned code carries no digits")
	}
	quantity := scan.Quantity
	if quantity < 1 {
		quantity = 1
	}

	ctx = logger.WithFields(ctx, zap.String("code", code))

	if s.dedupe.Observe(code) {
		s.metrics.DuplicateIgnored(ctx)
		logger.Debug(ctx, "duplicate scan ignored")

		event, err := store(ctx, s.storage, domain.ScanEvent{
			Code:     code,
			Status:   domain.ScanEventDuplicate,
			Quantity: quantity,
		})
		if err != nil {
			return Result{}, err
		}

		return Result{Event: event, Duplicate: true, PendingSyncs: s.pendingSyncs(ctx, code)}, nil
	}

	title := scan.Title
	if title == "" {
		title = s.lookupTitle(ctx, code)
	}

	// The event and its sync job commit atomically so a crash between the two
	// cannot leave a pending event no worker will ever pick up.
	var (
		event    domain.ScanEvent
		enqueued bool
	)
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		event, err = store(ctx, tx, domain.ScanEvent{
			Code:     code,
			Title:    title,
			Status:   domain.ScanEventPending,
			Quantity: quantity,
		})
		if err != nil {
			return err
		}

		if !s.opts.CartSyncEnabled {
			return nil
		}

		enqueued, err = tx.AddJob(ctx, worker.CartSyncArgs{Code: code, Quantity: quantity}, &river.InsertOpts{
			MaxAttempts: s.opts.MaxSyncAttempts,
			UniqueOpts: river.UniqueOpts{
				ByArgs:   true,
				ByPeriod: s.opts.SyncWindow,
			},
		})
		if err != nil {
			return serrors.Wrap(serrors.ErrInternal, err, "could not enqueue cart sync")
		}

		return nil
	})
	if err != nil {
		var serr *serrors.Error
		if !errors.As(err, &serr) {
			err = serrors.Wrap(serrors.ErrInternal, err, "scan transaction failed")
		}

		return Result{}, err
	}

	s.journalEntry(ctx, code, title)

	s.metrics.ScanIngested(ctx)
	logger.Info(ctx, "scan ingested", zap.String("title", title), zap.Bool("enqueued", enqueued))

	return Result{Event: event, Enqueued: enqueued}, nil
}

// pendingSyncs reports how many events for the code still await cart sync.
// Best effort; a failed count never fails the scan.
func (s *Service) pendingSyncs(ctx context.Context, code string) int64 {
	count, err := s.storage.PendingScanEventCountByCode(ctx, code)
	if err != nil {
		logger.Warn(ctx, "could not count pending syncs", zap.Error(err))

		return 0
	}

	return count
}

// Recent returns the latest ingested events, newest first.
func (s *Service) Recent(ctx context.Context) ([]domain.ScanEvent, error) {
	events, err := s.storage.RecentScanEvents(ctx, s.opts.RecentLimit)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not fetch recent scans")
	}

	return events, nil
}

// ClearRecent wipes the recent scan journal and reports how many entries were
// removed.
func (s *Service) ClearRecent(ctx context.Context) (int64, error) {
	affected, err := s.storage.ClearScanEvents(ctx)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrInternal, err, "could not clear recent scans")
	}

	return affected, nil
}

func store(ctx context.Context, strg storage.AllStorage, event domain.ScanEvent) (domain.ScanEvent, error) {
	stored, err := strg.StoreScanEvents(ctx, event)
	if err != nil {
		return domain.ScanEvent{}, serrors.Wrap(serrors.ErrInternal, err, "could not store scan event")
	}
	if len(stored) == 0 {
		return domain.ScanEvent{}, serrors.With(serrors.ErrInternal, "scan event insert returned no row")
	}

	return stored[0], nil
}

func (s *Service) lookupTitle(ctx context.Context, code string) string {
	if s.titles == nil {
		return ""
	}

	product, ok, err := s.titles.Lookup(ctx, code)
	if err != nil {
		logger.Warn(ctx, "title lookup failed", zap.Error(err))

		return ""
	}
	if !ok {
		return ""
	}

	return product.Title
}

func (s *Service) journalEntry(ctx context.Context, code, title string) {
	if s.journal == nil {
		return
	}

	entry := title
	if entry == "" {
		entry = code
	}
	if err := s.journal.AddEntry(ctx, entry, "barcode "+code); err != nil {
		logger.Warn(ctx, "could not journal scan", zap.Error(err))
	}
}
