// Package service runs the personal-details workflows: loading, saving a new
// person, updating an existing one and soft-deleting it with its children.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks API

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"persondesk/internal/records/metrics"
	"persondesk/internal/records/models"
	"persondesk/internal/records/state"
	id "persondesk/pkg/domain"
)

var (
	ErrBusy            = errors.New("another save, update or delete is in progress")
	ErrNoChanges       = errors.New("no changes to update")
	ErrNoSelection     = errors.New("no person selected")
	ErrCancelled       = errors.New("cancelled")
	ErrIncompleteName  = errors.New("first and last name are required")
	ErrCreatedNotFound = errors.New("could not find the newly created personal details")
)

// API is the backend surface the workflows need.
type API interface {
	ListPersons(ctx context.Context) ([]models.PersonSummary, error)
	GetCombined(ctx context.Context, personID id.PersonID) (*models.Combined, error)
	CreatePerson(ctx context.Context, p models.Person) (*models.PersonSummary, error)
	UpdatePerson(ctx context.Context, personID id.PersonID, p models.Person) (*models.PersonSummary, error)
	SoftDeletePerson(ctx context.Context, personID id.PersonID, p models.Person) error

	CreateOfficial(ctx context.Context, personID id.PersonID, in models.OfficialInput) (*models.OfficialRecord, error)
	UpdateOfficial(ctx context.Context, officialID id.OfficialID, in models.OfficialInput) (*models.OfficialRecord, error)
	SoftDeleteOfficial(ctx context.Context, officialID id.OfficialID, in models.OfficialInput) error

	ListBankDetails(ctx context.Context) ([]models.BankDetailRecord, error)
	GetBankDetail(ctx context.Context, bankDetailID id.BankDetailID) (*models.BankDetailRecord, error)
	CreateBankDetail(ctx context.Context, personID id.PersonID, in models.BankDetailInput) (*models.BankDetailRecord, error)
	UpdateBankDetail(ctx context.Context, bankDetailID id.BankDetailID, in models.BankDetailInput) (*models.BankDetailRecord, error)
	SoftDeleteBankDetail(ctx context.Context, bankDetailID id.BankDetailID) error
}

// Store is the state container the workflows read and dispatch to.
type Store interface {
	State() state.State
	Dispatch(a state.Action) state.State
}

// Service orchestrates the workflows against the backend.
type Service struct {
	api     API
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
	busy    atomic.Bool
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New constructs a Service.
func New(api API, store Store, opts ...Option) *Service {
	s := &Service{
		api:    api,
		store:  store,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the state container the service dispatches to.
func (s *Service) Store() Store {
	return s.store
}

// acquire takes the busy gate shared by every mutating workflow.
func (s *Service) acquire() (release func(), err error) {
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	s.store.Dispatch(state.SavingChanged{Saving: true})
	return func() {
		s.store.Dispatch(state.SavingChanged{Saving: false})
		s.busy.Store(false)
	}, nil
}

// Busy reports whether a mutating workflow is running.
func (s *Service) Busy() bool {
	return s.busy.Load()
}

func (s *Service) toast(kind state.MessageKind, text string) {
	s.store.Dispatch(state.ShowMessage{Text: text, Kind: kind})
}

func (s *Service) observe(workflow string, start time.Time, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementWorkflow(workflow, outcome)
	s.metrics.ObserveWorkflow(workflow, s.now().Sub(start))
}

func (s *Service) observeChild(r ItemResult) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementChildOperation(string(r.Kind), string(r.Op), r.Err)
}

func outcomeOf(err error, children BatchResult) string {
	switch {
	case errors.Is(err, ErrBusy), errors.Is(err, ErrNoChanges), errors.Is(err, ErrCancelled):
		return metrics.OutcomeSkipped
	case err != nil:
		return metrics.OutcomeFailure
	case len(children.Failed()) > 0:
		return metrics.OutcomePartial
	default:
		return metrics.OutcomeSuccess
	}
}
