package handler

import (
	"sync"
	"time"
)

// connectedWindow is how long after the last accepted scan the scanner is
// still reported as connected.
const connectedWindow = 2 * time.Minute

// ScannerStatus tracks when a scanner device last delivered a scan.
type ScannerStatus struct {
	mu       sync.Mutex
	lastScan time.Time
	now      func() time.Time
}

// NewScannerStatus constructs a ScannerStatus with no scan recorded.
func NewScannerStatus() *ScannerStatus {
	return &ScannerStatus{now: time.Now}
}

// MarkScan records that a scan just arrived.
func (s *ScannerStatus) MarkScan() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastScan = s.now()
}

// Connected reports whether a scan arrived recently.
func (s *ScannerStatus) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return !s.lastScan.IsZero() && s.now().Sub(s.lastScan) < connectedWindow
}
