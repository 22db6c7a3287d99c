// Package tasklist journals scans into a Google Tasks list, resolving the
// target list lazily by id or title.
package tasklist

import (
	"cartscan/pkg/gtasks"
	"cartscan/pkg/serrors"
	"context"
	"strings"
	"sync"
)

// Backend is the slice of the Google Tasks API the service needs.
type Backend interface {
	Lists(ctx context.Context) ([]gtasks.TaskList, error)
	CreateList(ctx context.Context, title string) (gtasks.TaskList, error)
	InsertTask(ctx context.Context, listID string, task gtasks.Task) error
}

// Service appends scan entries to a single task list. The list is resolved on
// first use: an explicit id wins, otherwise the list is found by title and
// created when missing. Safe for concurrent use.
type Service struct {
	backend Backend

	mu     sync.Mutex
	listID string
	title  string
}

// New constructs a Service targeting the list with the given id, or the list
// with the given title when the id is empty.
func New(backend Backend, listID, title string) *Service {
	return &Service{
		backend: backend,
		listID:  listID,
		title:   title,
	}
}

// Lists enumerates the available task lists.
func (s *Service) Lists(ctx context.Context) ([]gtasks.TaskList, error) {
	return s.backend.Lists(ctx)
}

// Select pins the target list for subsequent AddEntry calls. The id must
// name an existing list; the selected list is returned so callers can report
// its title.
func (s *Service) Select(ctx context.Context, listID string) (gtasks.TaskList, error) {
	lists, err := s.backend.Lists(ctx)
	if err != nil {
		return gtasks.TaskList{}, serrors.Wrap(serrors.ErrInternal, err, "could not enumerate task lists")
	}

	for _, l := range lists {
		if l.ID == listID {
			s.mu.Lock()
			s.listID = l.ID
			s.mu.Unlock()

			return l, nil
		}
	}

	return gtasks.TaskList{}, serrors.With(serrors.ErrNotFound, "no task list with id %q", listID)
}

// Selected returns the id of the currently pinned list, empty when the list
// has not been resolved yet.
func (s *Service) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listID
}

// AddEntry appends one scan entry to the target list.
func (s *Service) AddEntry(ctx context.Context, title, notes string) error {
	listID, err := s.ensureList(ctx)
	if err != nil {
		return err
	}

	if err := s.backend.InsertTask(ctx, listID, gtasks.Task{Title: title, Notes: notes}); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not insert task")
	}

	return nil
}

// ensureList resolves and caches the target list id.
func (s *Service) ensureList(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listID != "" {
		return s.listID, nil
	}
	if s.title == "" {
		return "", serrors.With(serrors.ErrConfiguration, "no task list id or title configured")
	}

	lists, err := s.backend.Lists(ctx)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not enumerate task lists")
	}
	for _, l := range lists {
		if strings.EqualFold(l.Title, s.title) {
			s.listID = l.ID

			return s.listID, nil
		}
	}

	created, err := s.backend.CreateList(ctx, s.title)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrInternal, err, "could not create task list")
	}
	s.listID = created.ID

	return s.listID, nil
}
