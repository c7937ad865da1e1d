package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/jaba-landing/forms"
	"github.com/jaba-landing/models"
	"github.com/jaba-landing/notify"
	"github.com/jaba-landing/store"
	"go.uber.org/zap"
)

// Outcome classifies a submission attempt
type Outcome string

const (
	OutcomeSuccess    Outcome = "success"
	OutcomeDuplicate  Outcome = "duplicate"
	OutcomeFailed     Outcome = "failed"
	OutcomeUnexpected Outcome = "unexpected"
	OutcomeInvalid    Outcome = "invalid"
	OutcomeRejected   Outcome = "rejected"
)

var (
	ErrSubmitInProgress = errors.New("a submission from this form is already in flight")
	ErrStorePanic       = errors.New("store call panicked")
)

// SubmissionService runs the signup pipeline for one form instance
type SubmissionService struct {
	form       forms.Form
	inserter   store.Inserter
	notifier   notify.Notifier
	catalog    notify.Catalog
	logger     *zap.Logger
	inFlight   *InFlight
	submitting atomic.Bool
}

// Option configures a SubmissionService
type Option func(*SubmissionService)

// WithCatalog overrides the outcome messages
func WithCatalog(c notify.Catalog) Option {
	return func(s *SubmissionService) { s.catalog = c }
}

// WithLogger sets the diagnostics logger
func WithLogger(l *zap.Logger) Option {
	return func(s *SubmissionService) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithInFlight shares the submitting state with other services that
// submit the same signup, such as concurrent HTTP posts
func WithInFlight(f *InFlight) Option {
	return func(s *SubmissionService) { s.inFlight = f }
}

// NewSubmissionService creates a new submission service instance
func NewSubmissionService(form forms.Form, inserter store.Inserter, notifier notify.Notifier, opts ...Option) *SubmissionService {
	s := &SubmissionService{
		form:     form,
		inserter: inserter,
		notifier: notifier,
		catalog:  notify.DefaultCatalog(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Form returns the state the service submits
func (s *SubmissionService) Form() forms.Form {
	return s.form
}

// Disabled reports whether inputs and the submit control are locked
func (s *SubmissionService) Disabled() bool {
	if s.submitting.Load() {
		return true
	}
	if s.inFlight == nil {
		return false
	}
	email := s.form.Snapshot().Get("email")
	return email != "" && s.inFlight.Held(s.form.Role(), email)
}

// Submit sends the current form state to the store once. Exactly one
// notification is produced per accepted attempt and the form is reset only
// on success.
func (s *SubmissionService) Submit(ctx context.Context) (Outcome, error) {
	if !s.submitting.CompareAndSwap(false, true) {
		return OutcomeRejected, ErrSubmitInProgress
	}
	defer s.submitting.Store(false)

	role := s.form.Role()
	log := s.logger.With(zap.String("role", string(role)))

	record, err := s.form.Registration()
	if err != nil {
		log.Info("Signup rejected before insert", zap.Error(err))
		s.notifier.Notify(s.catalog.Invalid(role))
		return OutcomeInvalid, err
	}
	email := record.ContactEmail()
	log = log.With(zap.String("email_domain", emailDomain(email)))

	if s.inFlight != nil {
		if !s.inFlight.Acquire(role, email) {
			log.Info("Signup already in flight")
			return OutcomeRejected, ErrSubmitInProgress
		}
		defer s.inFlight.Release(role, email)
	}

	err = s.insert(ctx, record)
	outcome := Classify(err)
	switch outcome {
	case OutcomeSuccess:
		log.Info("Signup stored", zap.String("table", record.TableName()))
		s.notifier.Notify(s.catalog.Success(role))
		s.form.Reset()
	case OutcomeDuplicate:
		log.Info("Signup email already registered")
		s.notifier.Notify(s.catalog.Duplicate(role))
	case OutcomeFailed:
		log.Warn("Store rejected signup", zap.Error(err))
		s.notifier.Notify(s.catalog.Failed(role))
	default:
		log.Error("Unexpected store failure", zap.Error(err))
		s.notifier.Notify(s.catalog.Failed(role))
	}
	return outcome, err
}

// insert calls the store, turning a panic into an error
func (s *SubmissionService) insert(ctx context.Context, record models.Registration) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrStorePanic, r)
		}
	}()
	return s.inserter.Insert(ctx, record)
}

// Classify maps an insert result to an outcome
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}
	var storeErr *store.Error
	if errors.As(err, &storeErr) {
		if storeErr.IsUniqueViolation() {
			return OutcomeDuplicate
		}
		return OutcomeFailed
	}
	return OutcomeUnexpected
}

func emailDomain(email string) string {
	if i := strings.LastIndexByte(email, '@'); i >= 0 {
		return email[i+1:]
	}
	return ""
}
