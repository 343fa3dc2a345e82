package assist

import "strings"

// DefaultHistoryBudget caps the combined content length of the history
// kept for prompting, in characters.
const DefaultHistoryBudget = 6000

// SanitizeHistory produces the canonical turn sequence: roles normalized
// to lowercase, content trimmed, turns empty after trimming dropped, and
// oldest turns evicted first once the combined content length exceeds
// budget. The input is never mutated and order is never changed.
// Deterministic and idempotent.
func SanitizeHistory(history []Turn, budget int) []Turn {
	cleaned := make([]Turn, 0, len(history))
	total := 0
	for _, t := range history {
		role := Role(strings.ToLower(strings.TrimSpace(string(t.Role))))
		content := strings.TrimSpace(t.Content)
		if role != RoleUser && role != RoleAssistant {
			continue
		}
		if content == "" {
			continue
		}
		cleaned = append(cleaned, Turn{Role: role, Content: content})
		total += len(content)
	}

	if budget <= 0 {
		return cleaned
	}

	// FIFO eviction: keep the most recent context.
	start := 0
	for total > budget && start < len(cleaned) {
		total -= len(cleaned[start].Content)
		start++
	}

	return cleaned[start:]
}

// SanitizeMessage trims the latest user message.
func SanitizeMessage(message string) string {
	return strings.TrimSpace(message)
}
