package worker

import (
	"cartscan/internal/resolver"
	"cartscan/pkg/domain"
	"cartscan/pkg/logger"
	"cartscan/pkg/metrics"
	"cartscan/pkg/picnic"
	"cartscan/pkg/serrors"
	"cartscan/pkg/storage"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// CartSyncArgs is the payload of one cart synchronization job. Jobs are
// unique per normalized code while pending, so a burst of scans of the same
// product collapses into a single sync.
type CartSyncArgs struct {
	// Code is the normalized barcode to resolve and add to the cart. Only the
	// code participates in uniqueness; quantity does not.
	Code string `json:"code" river:"unique"`
	// Quantity is the number of units to add; values < 1 mean 1.
	Quantity int `json:"quantity"`
}

// Kind implements river.JobArgs.
func (CartSyncArgs) Kind() string { return "CartSyncJob" }

// CartSyncWorker resolves scanned codes against the catalog and commits the
// cart mutation. It keeps one authenticated session for the lifetime of the
// process; the session mutex serializes catalog access so the lazy login
// happens exactly once.
type CartSyncWorker struct {
	river.WorkerDefaults[CartSyncArgs]

	pipeline *resolver.Pipeline
	events   storage.ScanEventStorage
	metrics  *metrics.Ingest

	// maxAttempts is the number of sync attempts before an event is marked
	// failed for good.
	maxAttempts int

	mu      sync.Mutex
	session picnic.Session
}

// NewCartSyncWorker constructs a CartSyncWorker.
func NewCartSyncWorker(pipeline *resolver.Pipeline,
	events storage.ScanEventStorage,
	m *metrics.Ingest,
	maxAttempts int) *CartSyncWorker {
	return &CartSyncWorker{
		pipeline:    pipeline,
		events:      events,
		metrics:     m,
		maxAttempts: maxAttempts,
	}
}

// SeedSession primes the worker with a pre-existing session credential so no
// login exchange is needed. Call before the worker starts processing jobs.
func (w *CartSyncWorker) SeedSession(authKey string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.session.AuthKey = authKey
}

// Work executes a single cart sync job: run the pipeline for the code, then
// record the outcome on every pending event for that code.
func (w *CartSyncWorker) Work(ctx context.Context, job *river.Job[CartSyncArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("code", job.Args.Code))

	start := time.Now()
	result, err := w.runPipeline(ctx, job.Args.Code, job.Args.Quantity)
	w.metrics.CartSync(ctx, err == nil, time.Since(start).Seconds())

	if err != nil {
		logger.Error(ctx, "cart sync failed", zap.Error(err))

		msg := err.Error()
		if updateErr := w.events.UpdatePendingScanEventsByCode(ctx, job.Args.Code, storage.ScanEventUpdates{
			Status:      domain.ScanEventFailed,
			LastError:   &msg,
			MaxAttempts: w.maxAttempts,
		}); updateErr != nil {
			logger.Error(ctx, "could not record sync failure", zap.Error(updateErr))
		}

		// a misconfigured or unresolvable scan will not heal with retries
		if errors.Is(err, serrors.ErrConfiguration) || errors.Is(err, serrors.ErrResolution) {
			return river.JobCancel(err) //nolint: wrapcheck
		}

		return err
	}

	empty := ""
	if err := w.events.UpdatePendingScanEventsByCode(ctx, job.Args.Code, storage.ScanEventUpdates{
		Status:      domain.ScanEventCompleted,
		ProductID:   &result.ProductID,
		ProductName: &result.Name,
		LastError:   &empty,
	}); err != nil {
		logger.Error(ctx, "could not record sync result", zap.Error(err))

		return err //nolint: wrapcheck
	}

	logger.Info(ctx, "cart sync completed",
		zap.String("productId", result.ProductID),
		zap.String("productName", result.Name))

	return nil
}

func (w *CartSyncWorker) runPipeline(ctx context.Context, code string, quantity int) (resolver.Result, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.pipeline.Run(ctx, &w.session, domain.ScanInput{RawCode: code, Quantity: quantity})
}
