package ai

import (
	"context"
	"fmt"
	"time"

	"flightly/models"
	"flightly/services/booking"
	"flightly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultGenerateTimeout = 30 * time.Second

// DefaultAssistantService implements AssistantService.
type DefaultAssistantService struct {
	generator  TextGenerator
	store      SessionStore
	extractor  Extractor
	reconciler booking.Reconciler
	system     string
	timeout    time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

// AssistantOption customises a DefaultAssistantService.
type AssistantOption func(*DefaultAssistantService)

// WithGenerateTimeout bounds each text generation call.
func WithGenerateTimeout(d time.Duration) AssistantOption {
	return func(s *DefaultAssistantService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithClock(now func() time.Time) AssistantOption {
	return func(s *DefaultAssistantService) { s.now = now }
}

func WithLogger(l *zap.Logger) AssistantOption {
	return func(s *DefaultAssistantService) { s.logger = l }
}

func NewDefaultAssistantService(
	generator TextGenerator,
	store SessionStore,
	extractor Extractor,
	reconciler booking.Reconciler,
	catalog PromptCatalog,
	opts ...AssistantOption,
) *DefaultAssistantService {
	s := &DefaultAssistantService{
		generator:  generator,
		store:      store,
		extractor:  extractor,
		reconciler: reconciler,
		system:     SystemMessage(catalog),
		timeout:    defaultGenerateTimeout,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = utils.GetLogger()
	}
	return s
}

// HandleTurn runs one turn: extract, prompt, generate, then commit whenever the
// draft holds an email. Commit results are logged, never put in the reply.
func (s *DefaultAssistantService) HandleTurn(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	session, err := s.loadOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	logger := s.logger.With(zap.String("session_id", session.ID))

	draft := session.Draft
	if req.Details != nil {
		draft = draft.Merge(*req.Details)
	}
	draft, changed := s.extractor.Extract(req.Message, draft)
	logger.Info("Extracted booking details",
		zap.Strings("changed", changed),
		zap.Strings("present", draft.PresentFields()))
	logger.Debug("Current draft", zap.Any("draft", draft))

	state := DeriveState(draft, session.State)
	prompt := BuildPrompt(s.system, draft, state, req.History, req.Message)

	reply, err := s.generate(ctx, prompt)
	if err != nil {
		logger.Error("Text generation failed", zap.Error(err))
		reply = FallbackReply
	} else {
		logger.Debug("Generated reply", zap.String("reply", reply))
	}

	if draft.Email != "" {
		outcome, err := s.reconciler.Commit(ctx, booking.CommitRequestFromDraft(draft))
		result := booking.ToResult(outcome, err)
		if result.Success {
			state = models.StateBooked
			logger.Info("Booking committed",
				zap.Bool("updated", result.Updated),
				zap.String("booking_id", result.BookingDetails.BookingID))
		} else {
			logger.Warn("Booking commit failed", zap.String("error", result.Error))
		}
	}

	session.Draft = draft
	session.State = state
	session.UpdatedAt = s.now()
	if err := s.store.Set(ctx, session); err != nil {
		logger.Error("Failed to save session", zap.Error(err))
	}

	return &models.ChatResponse{SessionID: session.ID, ResponseText: reply}, nil
}

func (s *DefaultAssistantService) generate(ctx context.Context, prompt []string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.generator.Generate(ctx, prompt)
}

// loadOrCreate starts a fresh session for an empty or unknown id.
func (s *DefaultAssistantService) loadOrCreate(ctx context.Context, id string) (*models.AssistantSession, error) {
	if id == "" {
		return &models.AssistantSession{ID: uuid.New().String(), State: models.StateInitial}, nil
	}
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return &models.AssistantSession{ID: id, State: models.StateInitial}, nil
	}
	return session, nil
}

func (s *DefaultAssistantService) GetSession(ctx context.Context, id string) (*models.AssistantSession, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *DefaultAssistantService) ClearSession(ctx context.Context, id string) error {
	if err := s.store.Clear(ctx, id); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
