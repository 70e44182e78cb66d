package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"crewdesk/contexts/workforce-ops/verification-service/domain/entities"
	domainerrors "crewdesk/contexts/workforce-ops/verification-service/domain/errors"
	"crewdesk/contexts/workforce-ops/verification-service/ports"

	"github.com/google/uuid"
)

// Store is the in-memory repository adapter. Every read hands out a deep
// copy and every write replaces the stored entity wholesale, so a reader
// holding an earlier snapshot never observes a half-written request.
type Store struct {
	mu       sync.RWMutex
	requests map[string]entities.VerificationRequest
}

func NewStore() *Store {
	return &Store{
		requests: make(map[string]entities.VerificationRequest),
	}
}

func (s *Store) CreateRequest(_ context.Context, request entities.VerificationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.requests[request.RequestID]; exists {
		return domainerrors.ErrInvalidRequestInput
	}
	s.requests[request.RequestID] = cloneRequest(request)
	return nil
}

func (s *Store) GetRequest(_ context.Context, requestID string) (entities.VerificationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.requests[requestID]
	if !ok {
		return entities.VerificationRequest{}, domainerrors.ErrRequestNotFound
	}
	return cloneRequest(request), nil
}

// UpdateRequest replaces the stored entity only while its current status is
// one of fromStatuses. Immutable fields are preserved from the stored copy.
func (s *Store) UpdateRequest(_ context.Context, request entities.VerificationRequest, fromStatuses []entities.RequestStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.requests[request.RequestID]
	if !ok {
		return domainerrors.ErrRequestNotFound
	}
	if !statusAllowed(stored.Status, fromStatuses) {
		return domainerrors.ErrInvalidTransition
	}

	next := cloneRequest(request)
	next.RequestedAt = stored.RequestedAt
	s.requests[request.RequestID] = next
	return nil
}

func (s *Store) ListRequests(_ context.Context, filter ports.RequestFilter) ([]entities.VerificationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.VerificationRequest, 0)
	for _, request := range s.requests {
		if filter.EmployeeID != "" && request.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.ManagerID != "" && request.ManagerID != filter.ManagerID {
			continue
		}
		if filter.Status != "" && request.Status != filter.Status {
			continue
		}
		items = append(items, cloneRequest(request))
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].RequestedAt.After(items[j].RequestedAt)
	})
	return items, nil
}

func (s *Store) ListOverdueRequests(_ context.Context, now time.Time) ([]entities.VerificationRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.VerificationRequest, 0)
	for _, request := range s.requests {
		if request.Overdue(now) {
			items = append(items, cloneRequest(request))
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].RequestedAt.Before(items[j].RequestedAt)
	})
	return items, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func statusAllowed(current entities.RequestStatus, allowed []entities.RequestStatus) bool {
	for _, status := range allowed {
		if current == status {
			return true
		}
	}
	return false
}

func cloneRequest(request entities.VerificationRequest) entities.VerificationRequest {
	cloned := request
	if request.Deadline != nil {
		deadline := *request.Deadline
		cloned.Deadline = &deadline
	}
	if request.Proof != nil {
		proof := *request.Proof
		cloned.Proof = &proof
	}
	if request.Response != nil {
		response := *request.Response
		cloned.Response = &response
	}
	return cloned
}
