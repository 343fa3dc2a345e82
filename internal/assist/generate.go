package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fixline/lead-assist/internal/ai"
)

// generate runs the reply provider call: sanitized transcript plus the
// latest message as context, the extraction JSON as hidden guidance.
// Unlike extraction, a failure here matters to the caller.
func (s *service) generate(
	ctx context.Context,
	history []Turn,
	message string,
	ext Extraction,
) (string, error) {

	ctx, cancel := context.WithTimeout(ctx, s.generateTimeout)
	defer cancel()

	extJSON, err := json.Marshal(ext)
	if err != nil {
		extJSON = []byte("{}")
	}

	prompt := fmt.Sprintf(
		ReplyRequestTemplate,
		FormatTranscript(history),
		message,
		string(extJSON),
	)

	raw, err := s.provider.Complete(ctx, ReplySystemPrompt, []ai.Message{
		{Role: string(RoleUser), Text: prompt},
	})
	if err != nil {
		return "", &GenerationError{Err: err}
	}

	return raw, nil
}

// FormatTranscript renders sanitized history as a compact speaker-tagged
// transcript for prompting.
func FormatTranscript(history []Turn) string {
	if len(history) == 0 {
		return "No prior conversation."
	}

	lines := make([]string, 0, len(history))
	for _, t := range history {
		speaker := "User"
		if t.Role == RoleAssistant {
			speaker = "Assistant"
		}
		lines = append(lines, speaker+": "+t.Content)
	}

	return strings.Join(lines, "\n")
}
