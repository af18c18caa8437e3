package service

import (
	"context"
	"sort"
	"time"

	"beauty-advisor-be/internal/apperror"
	"beauty-advisor-be/internal/dto"
	"beauty-advisor-be/internal/pkg/logger"
	"beauty-advisor-be/internal/repository/contract"
	"beauty-advisor-be/pkg/catalog"
	"beauty-advisor-be/pkg/events"
	"beauty-advisor-be/pkg/matching"
	"beauty-advisor-be/pkg/qualification"
	"beauty-advisor-be/pkg/questionbank"
)

// IQualificationService walks a session through the question bank and, on
// completion, hands the answer set to the matching engine.
type IQualificationService interface {
	StartQualification(ctx context.Context, request *dto.StartQualificationRequest) (*dto.StartQualificationResponse, error)
	ProcessAnswer(ctx context.Context, request *dto.ProcessAnswerRequest) (*dto.ProcessAnswerResponse, error)
	GetRecommendations(ctx context.Context, sessionId, language string, limit int) (*dto.RecommendationsResponse, error)
	ClearSession(ctx context.Context, sessionId string) error
	GetCategories(ctx context.Context) ([]dto.CategoryResponse, error)
}

type qualificationService struct {
	bank        *questionbank.Bank
	catalog     *catalog.Store
	engine      *matching.Engine
	sessionRepo contract.ISessionRepository
	publisher   IPublisherService
	log         logger.ILogger
	defaultLang string
}

func NewQualificationService(
	bank *questionbank.Bank,
	catalogStore *catalog.Store,
	engine *matching.Engine,
	sessionRepo contract.ISessionRepository,
	publisher IPublisherService,
	log logger.ILogger,
	defaultLang string,
) IQualificationService {
	return &qualificationService{
		bank:        bank,
		catalog:     catalogStore,
		engine:      engine,
		sessionRepo: sessionRepo,
		publisher:   publisher,
		log:         log,
		defaultLang: defaultLang,
	}
}

// StartQualification creates a session at step 1, overwriting any prior
// session for the same id, and returns the first question.
func (s *qualificationService) StartQualification(ctx context.Context, request *dto.StartQualificationRequest) (*dto.StartQualificationResponse, error) {
	if !s.bank.HasCategory(request.Category) {
		return nil, apperror.NewNotFound("unknown category %q", request.Category)
	}

	language := request.Language
	if language == "" {
		language = s.defaultLang
	}

	session := qualification.NewSession(request.SessionId, request.Category, language, time.Now())
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	question, err := s.bank.GetQuestion(request.Category, 1, language)
	if err != nil {
		return nil, err
	}

	s.log.Info("qualification", "session started", map[string]interface{}{
		"session_id": request.SessionId,
		"category":   request.Category,
	})

	return &dto.StartQualificationResponse{
		SessionId: session.SessionId,
		Category:  session.Category,
		Question:  question,
	}, nil
}

// ProcessAnswer records one step's answer and advances the cursor. Steps
// must arrive in order; an out-of-order or replayed step is rejected with
// StepOrderError instead of silently overwriting prior answers.
func (s *qualificationService) ProcessAnswer(ctx context.Context, request *dto.ProcessAnswerRequest) (*dto.ProcessAnswerResponse, error) {
	var (
		completed bool
		snapshot  qualification.Session
	)

	err := s.sessionRepo.Update(ctx, request.SessionId, func(session *qualification.Session) error {
		if session == nil {
			return apperror.NewSessionNotFound(request.SessionId)
		}
		if session.Completed() || request.Step != session.CurrentStep {
			return apperror.NewStepOutOfOrder(request.Step, session.CurrentStep)
		}
		if _, err := s.bank.Step(session.Category, request.Step); err != nil {
			return err
		}

		session.Answers[request.Step] = request.Answer.Selected
		session.CurrentStep = request.Step + 1

		if request.Step >= s.bank.TotalSteps(session.Category) {
			now := time.Now()
			session.CompletedAt = &now
			completed = true
		}
		snapshot = *session
		return nil
	})
	if err != nil {
		return nil, err
	}

	language := request.Language
	if language == "" {
		language = snapshot.Language
	}

	if completed {
		s.log.Info("qualification", "session completed", map[string]interface{}{
			"session_id": snapshot.SessionId,
			"category":   snapshot.Category,
			"steps":      len(snapshot.Answers),
		})
		s.publishCompletion(ctx, &snapshot)
		return &dto.ProcessAnswerResponse{Completed: true}, nil
	}

	next, err := s.bank.GetQuestion(snapshot.Category, snapshot.CurrentStep, language)
	if err != nil {
		return nil, err
	}
	return &dto.ProcessAnswerResponse{Completed: false, NextQuestion: next}, nil
}

// GetRecommendations matches the completed answer set against the catalog.
// An empty recommendation list is a valid outcome, not an error.
func (s *qualificationService) GetRecommendations(ctx context.Context, sessionId, language string, limit int) (*dto.RecommendationsResponse, error) {
	session, err := s.sessionRepo.Get(ctx, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NewSessionNotFound(sessionId)
	}
	if !session.Completed() {
		return nil, apperror.NewIncompleteSession(sessionId)
	}

	if language == "" {
		language = session.Language
	}

	recommendations := s.engine.MatchProducts(session.Answers, session.Category, language, limit)

	return &dto.RecommendationsResponse{
		SessionId:       sessionId,
		Category:        session.Category,
		Count:           len(recommendations),
		Recommendations: recommendations,
	}, nil
}

func (s *qualificationService) ClearSession(ctx context.Context, sessionId string) error {
	return s.sessionRepo.Delete(ctx, sessionId)
}

func (s *qualificationService) GetCategories(_ context.Context) ([]dto.CategoryResponse, error) {
	categories := s.bank.Categories()
	sort.Strings(categories)

	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryResponse{
			Category:   c,
			TotalSteps: s.bank.TotalSteps(c),
			Products:   len(s.catalog.ByCategory(c)),
		})
	}
	return out, nil
}

// publishCompletion emits the domain event consumed by the follow-up
// record writer. Failure to publish never fails the answer flow.
func (s *qualificationService) publishCompletion(ctx context.Context, session *qualification.Session) {
	if s.publisher == nil {
		return
	}

	recommendations := s.engine.MatchProducts(session.Answers, session.Category, s.defaultLang, matching.DefaultLimit)
	ids := make([]string, 0, len(recommendations))
	for _, r := range recommendations {
		ids = append(ids, r.Id)
	}

	event := &events.QualificationCompleted{
		SessionId:             session.SessionId,
		Category:              session.Category,
		Language:              session.Language,
		Contraindications:     tagSetToSlice(matching.ExtractContraindications(s.bank, session.Answers, session.Category)),
		RequiredTags:          tagSetToSlice(matching.ExtractRequiredTags(s.bank, session.Answers, session.Category)),
		DesiredTags:           tagSetToSlice(matching.ExtractDesiredTags(s.bank, session.Answers, session.Category)),
		RecommendedProductIds: ids,
		CompletedAt:           *session.CompletedAt,
	}

	if err := s.publisher.PublishQualificationCompleted(ctx, event); err != nil {
		s.log.Warn("qualification", "failed to publish completion event", map[string]interface{}{
			"session_id": session.SessionId,
			"error":      err.Error(),
		})
	}
}

func tagSetToSlice(set matching.TagSet) []string {
	out := make([]string, 0, len(set))
	for tag := range set {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
