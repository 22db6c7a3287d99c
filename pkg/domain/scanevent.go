package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScanEventID uniquely identifies a recorded scan event.
// It wraps uuid.UUID to provide type safety at the domain layer.
type ScanEventID uuid.UUID

// ScanEventStatus represents the lifecycle state of a scan event's cart sync.
type ScanEventStatus string

const (
	// ScanEventPending indicates the cart sync has been enqueued but not processed yet.
	ScanEventPending ScanEventStatus = "PENDING"
	// ScanEventCompleted indicates the product was resolved and added to the cart.
	ScanEventCompleted ScanEventStatus = "COMPLETED"
	// ScanEventFailed indicates the cart sync ended with an error; see LastError.
	ScanEventFailed ScanEventStatus = "FAILED"
	// ScanEventDuplicate indicates the scan was ignored as a recent duplicate.
	ScanEventDuplicate ScanEventStatus = "DUPLICATE"
)

// ScanEvent is one ingested scan and the state of its cart synchronization.
type ScanEvent struct {
	// ID is the unique identifier of the event.
	ID ScanEventID `json:"id"`

	// Code is the normalized barcode that was ingested.
	Code string `json:"code"`
	// Title is the display title looked up for the code, if any.
	Title string `json:"title,omitempty"`
	// Status is the current lifecycle state of the cart sync.
	Status ScanEventStatus `json:"status"`

	// ProductID is the resolved catalog product identifier, once known.
	ProductID string `json:"productId,omitempty"`
	// ProductName is the resolved catalog product name, once known.
	ProductName string `json:"productName,omitempty"`
	// Quantity is the number of units requested.
	Quantity int `json:"quantity"`

	// Attempts is the number of cart sync attempts made for this event.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent sync error message, if any.
	LastError string `json:"-"`

	// CreatedAt is the time the scan was ingested.
	CreatedAt time.Time `json:"when"`
	// UpdatedAt is the time the event last changed.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the event was cleared from the recent list; zero
	// means visible.
	DeletedAt time.Time `json:"-"`
}
