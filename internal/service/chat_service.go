package service

import (
	"context"
	"fmt"
	"strings"

	"beauty-advisor-be/internal/dto"
	"beauty-advisor-be/internal/pkg/logger"
	"beauty-advisor-be/internal/repository/contract"
	"beauty-advisor-be/pkg/llm"
	"beauty-advisor-be/pkg/matching"
	"beauty-advisor-be/pkg/questionbank"
)

const chatSystemPrompt = `You are a friendly beauty product advisor for an e-commerce brand.
Rephrase the structured advisor output below as a short, warm reply in the customer's language.
Never invent products, prices or benefits that are not in the structured output.`

// IChatService phrases the qualification engine's structured output as
// conversational text. The engine's result is authoritative; the LLM only
// renders prose and is bypassed entirely when unavailable.
type IChatService interface {
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
}

type chatService struct {
	qualification IQualificationService
	bank          *questionbank.Bank
	sessionRepo   contract.ISessionRepository
	llmProvider   llm.LLMProvider
	log           logger.ILogger
}

func NewChatService(
	qualification IQualificationService,
	bank *questionbank.Bank,
	sessionRepo contract.ISessionRepository,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
) IChatService {
	return &chatService{
		qualification: qualification,
		bank:          bank,
		sessionRepo:   sessionRepo,
		llmProvider:   llmProvider,
		log:           log,
	}
}

func (cs *chatService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	structured, err := cs.structuredReply(ctx, request)
	if err != nil {
		return nil, err
	}

	reply, source := cs.phrase(ctx, structured, request.Message)
	return &dto.SendChatResponse{
		SessionId: request.SessionId,
		Reply:     reply,
		Source:    source,
	}, nil
}

// structuredReply renders the session's current position as deterministic
// text: the pending question, the recommendation list, or a restart hint.
func (cs *chatService) structuredReply(ctx context.Context, request *dto.SendChatRequest) (string, error) {
	session, err := cs.sessionRepo.Get(ctx, request.SessionId)
	if err != nil {
		return "", err
	}

	switch {
	case session == nil:
		return "No qualification in progress. Ask the customer which category they need help with (hair or body) and start the qualification.", nil

	case session.Completed():
		res, err := cs.qualification.GetRecommendations(ctx, request.SessionId, request.Language, matching.DefaultLimit)
		if err != nil {
			return "", err
		}
		if res.Count == 0 {
			return "The qualification finished but no product in the catalog fits these answers. Apologize and offer to restart with different answers.", nil
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Recommended products (%d):\n", res.Count)
		for i, r := range res.Recommendations {
			fmt.Fprintf(&b, "%d. %s (%.0f%% match, %s %.2f): %s\n", i+1, r.Name, r.MatchScore*100, r.Currency, r.Price, r.Benefits)
		}
		return b.String(), nil

	default:
		q, err := cs.bank.GetQuestion(session.Category, session.CurrentStep, request.Language)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		fmt.Fprintf(&b, "Next qualification question (step %d of %d):\n%s\n", q.Step, q.TotalSteps, q.Question)
		for _, opt := range q.Options {
			fmt.Fprintf(&b, "- %s (%s)\n", opt.Label, opt.Id)
		}
		return b.String(), nil
	}
}

func (cs *chatService) phrase(ctx context.Context, structured, userMessage string) (string, string) {
	if cs.llmProvider == nil {
		return structured, "template"
	}

	history := []llm.Message{
		{Role: "system", Content: chatSystemPrompt},
		{Role: "user", Content: userMessage},
		{Role: "system", Content: "Structured advisor output:\n" + structured},
	}
	reply, err := cs.llmProvider.Chat(ctx, history, llm.WithTemperature(0.6))
	if err != nil {
		cs.log.Warn("chat", "LLM phrasing failed, using template fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return structured, "template"
	}
	return reply, "llm"
}
