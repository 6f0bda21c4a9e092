package test

import (
	"context"
	"sync"

	domainErrors "github.com/platefront/checkout/internal/domain/errors"
	"github.com/platefront/checkout/internal/domain/model"
)

// AttemptRepositoryStub journals attempts in-memory for tests, enforcing the
// same terminal-state guard as the real repository.
type AttemptRepositoryStub struct {
	Err error

	mu       sync.Mutex
	attempts map[string]*model.CheckoutAttempt
	byOrder  map[string]string
	History  []model.AttemptState
}

// NewAttemptRepositoryStub constructs the stub with initialized maps.
func NewAttemptRepositoryStub() *AttemptRepositoryStub {
	return &AttemptRepositoryStub{
		attempts: make(map[string]*model.CheckoutAttempt),
		byOrder:  make(map[string]string),
	}
}

// Create stores a fresh attempt row.
func (s *AttemptRepositoryStub) Create(ctx context.Context, attempt *model.CheckoutAttempt) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *attempt
	s.attempts[attempt.ID] = &copied
	s.History = append(s.History, attempt.State)
	return nil
}

// Transition moves a live attempt to the next state.
func (s *AttemptRepositoryStub) Transition(ctx context.Context, id string, to model.AttemptState) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	attempt, ok := s.attempts[id]
	if !ok || attempt.State.Terminal() {
		return false, nil
	}
	attempt.State = to
	s.History = append(s.History, to)
	return true, nil
}

// Finish records a terminal state with an optional failure reason.
func (s *AttemptRepositoryStub) Finish(ctx context.Context, id string, to model.AttemptState, reason string) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	attempt, ok := s.attempts[id]
	if !ok || attempt.State.Terminal() {
		return false, nil
	}
	attempt.State = to
	attempt.FailureReason = reason
	s.History = append(s.History, to)
	return true, nil
}

// BindOrder associates a backend order id with the attempt.
func (s *AttemptRepositoryStub) BindOrder(ctx context.Context, id, orderID string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	attempt, ok := s.attempts[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	attempt.OrderID = orderID
	s.byOrder[orderID] = id
	return nil
}

// GetByID returns a copy of the stored attempt.
func (s *AttemptRepositoryStub) GetByID(ctx context.Context, id string) (*model.CheckoutAttempt, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	attempt, ok := s.attempts[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *attempt
	return &copied, nil
}

// GetByOrderID resolves the attempt that produced the given order.
func (s *AttemptRepositoryStub) GetByOrderID(ctx context.Context, orderID string) (*model.CheckoutAttempt, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byOrder[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *s.attempts[id]
	return &copied, nil
}

// Seed inserts an attempt directly, bypassing lifecycle rules.
func (s *AttemptRepositoryStub) Seed(attempt model.CheckoutAttempt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := attempt
	s.attempts[attempt.ID] = &copied
	if attempt.OrderID != "" {
		s.byOrder[attempt.OrderID] = attempt.ID
	}
}
