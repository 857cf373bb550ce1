package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SAP-F-2025/influencer-survey/internal/events"
	"github.com/SAP-F-2025/influencer-survey/internal/models"
	"github.com/SAP-F-2025/influencer-survey/internal/validator"
	"github.com/google/uuid"
)

// SurveyState is a response as the respondent currently sees it.
type SurveyState struct {
	Response *models.SurveyResponse `json:"response"`
	Flow     FlowPlan               `json:"flow"`
}

// SubmitResult is returned after a successful submission.
type SubmitResult struct {
	Response *models.SurveyResponse `json:"response"`
	Save     SaveResult             `json:"save"`
}

// SurveyService drives a respondent through the questionnaire
type SurveyService interface {
	Start(ctx context.Context) (*SurveyState, error)
	Get(ctx context.Context, responseID string) (*SurveyState, error)
	Apply(ctx context.Context, responseID string, update models.Update) (*SurveyState, error)
	ApplyAnswer(ctx context.Context, responseID string, payload models.AnswerPayload) (*SurveyState, error)
	Submit(ctx context.Context, responseID string) (*SubmitResult, error)
	ClearAll(ctx context.Context)
}

// DefaultSessionIdleTTL is how long an untouched session stays in memory.
// Its draft outlives it, so the respondent can still resume.
const DefaultSessionIdleTTL = 30 * time.Minute

type session struct {
	mu       sync.Mutex
	response *models.SurveyResponse
	done     bool

	// guarded by surveyService.mu
	lastTouched time.Time
}

type surveyService struct {
	gateway        PersistenceGateway
	eventPublisher events.EventPublisher
	validator      *validator.Validator
	logger         *ServiceLogger

	now         func() time.Time
	idGenerator func() string
	idleTTL     time.Duration

	mu       sync.Mutex
	sessions map[string]*session
	// recently submitted ids, kept for idleTTL to answer repeat submits
	submitted map[string]time.Time
}

func NewSurveyService(
	gateway PersistenceGateway,
	eventPublisher events.EventPublisher,
	validator *validator.Validator,
	logger *slog.Logger,
) SurveyService {
	return &surveyService{
		gateway:        gateway,
		eventPublisher: eventPublisher,
		validator:      validator,
		logger:         NewServiceLogger(logger, LogConfig{Service: "influencer-survey", Component: "survey"}),
		now:            time.Now,
		idGenerator:    uuid.NewString,
		idleTTL:        DefaultSessionIdleTTL,
		sessions:       make(map[string]*session),
		submitted:      make(map[string]time.Time),
	}
}

func stateOf(r *models.SurveyResponse) *SurveyState {
	c := r.Clone()
	return &SurveyState{Response: c, Flow: PlanFlow(c)}
}

func (s *surveyService) Start(ctx context.Context) (*SurveyState, error) {
	response := models.NewSurveyResponse(s.idGenerator())
	op := s.logger.WithOperation(ctx, "start", response.ID)

	if err := s.validator.Response().ValidateDraft(response); err != nil {
		op.LogResult(err)
		return nil, err
	}

	s.mu.Lock()
	s.sweepLocked(ctx)
	s.sessions[response.ID] = &session{response: response, lastTouched: s.now()}
	s.mu.Unlock()

	s.gateway.SaveDraft(ctx, response)
	op.LogResult(nil)
	return stateOf(response), nil
}

// lookup returns the live session for responseID, resuming it from its draft
// when the process does not hold it.
func (s *surveyService) lookup(ctx context.Context, responseID string) (*session, error) {
	s.mu.Lock()
	if _, done := s.submitted[responseID]; done {
		s.mu.Unlock()
		return nil, ErrAlreadySubmitted
	}
	if sess, ok := s.sessions[responseID]; ok {
		sess.lastTouched = s.now()
		s.mu.Unlock()
		return sess, nil
	}
	s.mu.Unlock()

	draft, ok := s.gateway.LoadDraft(ctx, responseID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResponseNotFound, responseID)
	}
	if draft.IsComplete() {
		return nil, ErrAlreadySubmitted
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[responseID]; ok {
		sess.lastTouched = s.now()
		return sess, nil
	}
	sess := &session{response: draft, lastTouched: s.now()}
	s.sessions[responseID] = sess
	s.logger.Logger().InfoContext(ctx, "Resumed survey from draft", "response_id", responseID)
	return sess, nil
}

func (s *surveyService) Get(ctx context.Context, responseID string) (*SurveyState, error) {
	sess, err := s.lookup(ctx, responseID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.done {
		return nil, ErrAlreadySubmitted
	}
	return stateOf(sess.response), nil
}

func (s *surveyService) ApplyAnswer(ctx context.Context, responseID string, payload models.AnswerPayload) (*SurveyState, error) {
	update, err := models.DecodeUpdate(payload)
	if err != nil {
		if !errors.Is(err, models.ErrUnknownField) {
			err = fmt.Errorf("%w: %v", ErrBadRequest, err)
		}
		return nil, err
	}
	return s.Apply(ctx, responseID, update)
}

// Apply replaces one answer. The change is validated on a copy and only
// committed when the whole response is still valid. The flow plan is
// recomputed from the committed response.
func (s *surveyService) Apply(ctx context.Context, responseID string, update models.Update) (*SurveyState, error) {
	op := s.logger.WithOperation(ctx, "apply", responseID)

	sess, err := s.lookup(ctx, responseID)
	if err != nil {
		op.LogResult(err)
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.done {
		op.LogResult(ErrAlreadySubmitted)
		return nil, ErrAlreadySubmitted
	}

	next := sess.response.Clone()
	update.Apply(next)
	if err := s.validator.Validate(next); err != nil {
		op.LogResult(err)
		return nil, err
	}

	sess.response = next
	s.gateway.SaveDraft(ctx, next)

	op.LogResult(nil,
		slog.String("section", string(update.Section())),
		slog.String("field", update.Field()))
	return stateOf(next), nil
}

func (s *surveyService) Submit(ctx context.Context, responseID string) (*SubmitResult, error) {
	op := s.logger.WithOperation(ctx, "submit", responseID)

	sess, err := s.lookup(ctx, responseID)
	if err != nil {
		op.LogResult(err)
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.done {
		op.LogResult(ErrAlreadySubmitted)
		return nil, ErrAlreadySubmitted
	}

	final := sess.response.Clone()
	submittedAt := s.now().UTC()
	final.SubmittedAt = &submittedAt

	if err := s.validator.Validate(final); err != nil {
		op.LogResult(err)
		return nil, err
	}
	if err := s.validator.Response().ValidateSubmission(final); err != nil {
		ruleErr := NewBusinessRuleError("submission_complete", err.Error(), map[string]interface{}{
			"response_id": final.ID,
		})
		op.LogResult(ruleErr)
		return nil, ruleErr
	}

	save, err := s.gateway.SaveCompleted(ctx, final)
	if err != nil {
		// the session stays open so the respondent can retry
		op.LogResult(err)
		return nil, err
	}

	sess.response = final
	sess.done = true
	s.mu.Lock()
	delete(s.sessions, responseID)
	s.submitted[responseID] = s.now()
	s.mu.Unlock()

	s.publish(ctx, events.NewResponseSubmittedEvent(
		final.ID, submittedAt, string(save.Tier),
		final.SocialMedia.UsesSocialMedia, final.InfluencerRelations.FollowsInfluencers,
	))
	if save.Tier == TierLocal {
		s.publish(ctx, events.NewResponseSavedLocallyEvent(final.ID, submittedAt, ErrPrimaryUnavailable.Error()))
	}

	op.LogResult(nil, slog.String("tier", string(save.Tier)))
	return &SubmitResult{Response: final.Clone(), Save: save}, nil
}

// sweepLocked drops sessions idle for longer than idleTTL and forgets
// submissions older than that. Callers hold s.mu.
func (s *surveyService) sweepLocked(ctx context.Context) {
	cutoff := s.now().Add(-s.idleTTL)
	evicted := 0
	for id, sess := range s.sessions {
		if sess.lastTouched.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
	}
	for id, at := range s.submitted {
		if at.Before(cutoff) {
			delete(s.submitted, id)
		}
	}
	if evicted > 0 {
		s.logger.Logger().DebugContext(ctx, "Evicted idle survey sessions", "count", evicted)
	}
}

func (s *surveyService) ClearAll(ctx context.Context) {
	s.gateway.ClearAll(ctx)
	s.publish(ctx, events.NewDataClearedEvent(s.now().UTC()))
}

// publish sends an event; failures are logged and never fail the operation.
func (s *surveyService) publish(ctx context.Context, event *events.SurveyEvent) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Logger().WarnContext(ctx, "Failed to publish survey event",
			"event_type", event.Type,
			"response_id", event.ResponseID,
			"error", err)
	}
}
