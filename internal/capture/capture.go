// Package capture runs the client-side scan loop: pull frames from a camera
// stream, decode barcodes and QR codes, and submit fresh detections to the
// ingestion endpoint. Detections are deduplicated with a bounded seen set and
// submissions are bounded in flight, so a busy camera cannot pile up work.
package capture

import (
	"cartscan/pkg/logger"
	"cartscan/pkg/ttlset"
	"context"
	"errors"
	"image"
	"sync"
	"time"

	"go.uber.org/zap"
)

// State is the lifecycle state of a capture loop.
type State string

const (
	// StateIdle means the loop has not started yet.
	StateIdle State = "idle"
	// StateCapturing means frames are being read and decoded.
	StateCapturing State = "capturing"
	// StateStopped means the loop ended because its context was canceled.
	StateStopped State = "stopped"
	// StateFailed means the loop ended because the frame source broke.
	StateFailed State = "failed"
)

// FrameSource delivers successive camera frames. Next blocks until a frame is
// available, the source fails, or ctx is done.
type FrameSource interface {
	Next(ctx context.Context) (image.Image, error)
	Close() error
}

// Decoder extracts one code from a frame. ok is false when the frame holds no
// readable code.
type Decoder interface {
	Decode(img image.Image) (code string, ok bool)
}

// Submitter delivers a detected code to the ingestion endpoint.
type Submitter interface {
	Submit(ctx context.Context, code string) error
}

// Event describes something the loop observed.
type Event struct {
	// Code is the detected code, when applicable.
	Code string
	// Err is set for submission failures.
	Err error
}

// Options tune the capture loop.
type Options struct {
	// TickInterval is the pause between frame reads.
	TickInterval time.Duration
	// MaxInFlight bounds concurrent submissions. Values < 1 mean 1.
	MaxInFlight int
	// SeenTTL is how long a detected code suppresses re-submission.
	SeenTTL time.Duration
	// SeenCapacity bounds the seen set size.
	SeenCapacity int
	// Observer, when non-nil, is invoked for every detection and submission
	// failure. It must be safe for concurrent use.
	Observer func(Event)
}

// Loop is a single capture run over one frame source.
type Loop struct {
	source    FrameSource
	decoder   Decoder
	submitter Submitter
	opts      Options
	seen      *ttlset.Set

	slots chan struct{}
	wg    sync.WaitGroup

	mu    sync.Mutex
	state State
}

// NewLoop constructs a Loop in the idle state.
func NewLoop(source FrameSource, decoder Decoder, submitter Submitter, opts Options) *Loop {
	if opts.MaxInFlight < 1 {
		opts.MaxInFlight = 1
	}

	return &Loop{
		source:    source,
		decoder:   decoder,
		submitter: submitter,
		opts:      opts,
		seen:      ttlset.New(opts.SeenTTL, opts.SeenCapacity),
		slots:     make(chan struct{}, opts.MaxInFlight),
		state:     StateIdle,
	}
}

// State returns the loop's current lifecycle state.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.state
}

func (l *Loop) setState(s State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = s
}

// Run drives the capture loop until ctx is canceled or the frame source
// fails. On every exit path the in-flight submissions are drained and the
// source is closed before Run returns. A canceled context is a clean stop and
// returns nil; a broken source moves the loop to the failed state and returns
// the error.
func (l *Loop) Run(ctx context.Context) error {
	l.setState(StateCapturing)

	defer func() {
		l.wg.Wait()
		if err := l.source.Close(); err != nil {
			logger.Warn(ctx, "could not close frame source", zap.Error(err))
		}
	}()

	ticker := time.NewTicker(l.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.setState(StateStopped)

			return nil
		case <-ticker.C:
		}

		frame, err := l.source.Next(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				l.setState(StateStopped)

				return nil
			}
			l.setState(StateFailed)

			return err
		}

		code, ok := l.decoder.Decode(frame)
		if !ok || l.seen.Observe(code) {
			continue
		}

		l.observe(Event{Code: code})
		l.submit(ctx, code)
	}
}

// submit dispatches one code asynchronously, bounded by the in-flight cap.
// When every slot is taken the detection is dropped and unmarked so a later
// frame can retry it.
func (l *Loop) submit(ctx context.Context, code string) {
	select {
	case l.slots <- struct{}{}:
	default:
		l.seen.Forget(code)
		logger.Debug(ctx, "submission slots exhausted, dropping detection", zap.String("code", code))

		return
	}

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer func() { <-l.slots }()

		if err := l.submitter.Submit(ctx, code); err != nil {
			// unmark so the code can be retried on a future detection
			l.seen.Forget(code)
			l.observe(Event{Code: code, Err: err})
			logger.Warn(ctx, "could not submit code", zap.String("code", code), zap.Error(err))

			return
		}

		logger.Info(ctx, "code submitted", zap.String("code", code))
	}()
}

func (l *Loop) observe(e Event) {
	if l.opts.Observer != nil {
		l.opts.Observer(e)
	}
}
