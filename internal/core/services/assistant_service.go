package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/maooe/finance_control_app/internal/apperrors"
	portsrepo "github.com/maooe/finance_control_app/internal/core/ports/repositories"
	portssvc "github.com/maooe/finance_control_app/internal/core/ports/services"
)

// Fixed assistant strings, kept in pt-BR like the rest of the user-facing
// surface.
const (
	// AssistantFallback is returned on any service failure.
	AssistantFallback = "Desculpe, ocorreu um erro ao consultar o agente inteligente."
	// AssistantEmptyAnswer is returned when the service answers with no text.
	AssistantEmptyAnswer = "Não consegui processar sua busca no momento."
)

// assistantService implements the AssistantSvcFacade interface. It forwards
// the question plus the full financial snapshot to the completion service
// and returns prose. No local analysis happens here beyond serialization.
type assistantService struct {
	BaseService
	store      portssvc.StoreSvcFacade
	completion portsrepo.CompletionClient
}

// NewAssistantService creates a new assistant bridge over store and completion.
func NewAssistantService(store portssvc.StoreSvcFacade, completion portsrepo.CompletionClient) portssvc.AssistantSvcFacade {
	return &assistantService{
		store:      store,
		completion: completion,
	}
}

// Ensure assistantService implements the AssistantSvcFacade interface
var _ portssvc.AssistantSvcFacade = (*assistantService)(nil)

// Query answers question over the current snapshot. Service failures never
// reach the caller as errors; they degrade to the fixed fallback string.
func (s *assistantService) Query(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question cannot be empty: %w", apperrors.ErrValidation)
	}

	snapshot := s.store.Snapshot(ctx)
	dataJSON, err := json.Marshal(snapshot)
	if err != nil {
		s.LogError(ctx, err, "Failed to serialize snapshot for assistant")
		return AssistantFallback, nil
	}

	prompt := fmt.Sprintf(
		`O usuário perguntou: %q. Abaixo estão os dados financeiros atuais do aplicativo: %s. `+
			`Responda de forma curta e objetiva em português brasileiro, ajudando o usuário a encontrar informações ou entender suas finanças.`,
		question, dataJSON)

	answer, err := s.completion.GenerateText(ctx, prompt)
	if err != nil {
		s.LogWarn(ctx, "Assistant call failed, degrading to fallback", slog.String("error", err.Error()))
		return AssistantFallback, nil
	}
	if strings.TrimSpace(answer) == "" {
		return AssistantEmptyAnswer, nil
	}

	return answer, nil
}
