package assist

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fixline/lead-assist/internal/ai"
	"github.com/fixline/lead-assist/internal/logging"
)

// service runs one turn at a time. It holds configuration only; every
// per-turn value lives on the stack, so concurrent turns need no
// locking and nothing leaks across requests.
type service struct {
	provider        ai.Provider
	historyBudget   int
	extractTimeout  time.Duration
	generateTimeout time.Duration
}

func NewService(provider ai.Provider) Service {
	return &service{
		provider:        provider,
		historyBudget:   envInt("HISTORY_CHAR_BUDGET", DefaultHistoryBudget),
		extractTimeout:  envSeconds("EXTRACT_TIMEOUT", 15),
		generateTimeout: envSeconds("GENERATE_TIMEOUT", 45),
	}
}

// ProcessTurn sequences one request through the pipeline:
// sanitize, extract, generate, filter. Provider failures never escape:
// extraction degrades to an empty structure and generation falls back
// to static text, so any validated request yields a reply.
func (s *service) ProcessTurn(ctx context.Context, req TurnRequest) (ReplyResult, error) {
	message := SanitizeMessage(req.Message)
	history := SanitizeHistory(req.History, s.historyBudget)

	contextBlob := buildContextBlob(history, message)

	log := logging.With(zap.Int("history_turns", len(history)))
	log.Info("processing turn")

	// extraction is advisory: a failed call must not fail the turn
	ext := s.extract(ctx, contextBlob)

	candidate, err := s.generate(ctx, history, message, ext)
	if err != nil {
		log.Warn("using static fallback reply", zap.Error(err))
		candidate = FallbackGenerationReply
	}

	extJSON, _ := json.Marshal(ext)
	verdict := ApplyGuardrails(candidate, contextBlob+"\n"+string(extJSON))

	switch {
	case verdict.Fallback:
		log.Info("guardrails substituted fallback reply")
	case verdict.Rewritten:
		log.Info("guardrails rewrote reply")
	}

	return ReplyResult{Reply: verdict.Text}, nil
}

// buildContextBlob renders history plus the latest message as role-tagged
// lines; used for extraction input and guardrail claim checks.
func buildContextBlob(history []Turn, message string) string {
	lines := make([]string, 0, len(history)+1)
	for _, t := range history {
		lines = append(lines, string(t.Role)+": "+t.Content)
	}
	lines = append(lines, string(RoleUser)+": "+message)
	return strings.Join(lines, "\n")
}

func envInt(key string, fallback int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func envSeconds(key string, fallback int) time.Duration {
	return time.Duration(envInt(key, fallback)) * time.Second
}
