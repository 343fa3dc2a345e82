package assist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fixline/lead-assist/internal/ai"
	"github.com/fixline/lead-assist/internal/logging"
)

// NotAvailable is the placeholder for extraction fields the model could
// not fill in.
const NotAvailable = "Not Available"

// EmptyExtraction is what the pipeline proceeds with when extraction is
// unavailable: every field marked Not Available.
func EmptyExtraction() Extraction {
	return Extraction{
		IssueType:          NotAvailable,
		Location:           NotAvailable,
		Trigger:            NotAvailable,
		Urgency:            NotAvailable,
		MissingInformation: []string{NotAvailable},
	}
}

// extract runs the extraction-only provider call. It never fails the
// turn: provider errors, timeouts and unparseable output all degrade to
// EmptyExtraction, since extraction is advisory.
func (s *service) extract(ctx context.Context, contextBlob string) Extraction {
	ctx, cancel := context.WithTimeout(ctx, s.extractTimeout)
	defer cancel()

	prompt := fmt.Sprintf(ExtractionRequestTemplate, contextBlob)

	raw, err := s.provider.Complete(ctx, ExtractionSystemPrompt, []ai.Message{
		{Role: string(RoleUser), Text: prompt},
	})
	if err != nil {
		logging.L().Warn("extraction call failed, continuing without structure", zap.Error(err))
		return EmptyExtraction()
	}

	ext, err := ParseExtraction(raw)
	if err != nil {
		logging.L().Warn("extraction output unparseable, continuing without structure", zap.Error(err))
		return EmptyExtraction()
	}

	return ext
}

// extractionPayload tolerates the loose shapes models actually return:
// missing_information may arrive as a string, a list, or nothing.
type extractionPayload struct {
	IssueType          string `json:"issue_type"`
	Location           string `json:"location"`
	Trigger            string `json:"trigger"`
	Urgency            string `json:"urgency"`
	MissingInformation any    `json:"missing_information"`
}

// ParseExtraction parses the provider's extraction response. Strict JSON
// is tried first; if the model wrapped the object in markdown or prose,
// the outermost brace pair is parsed instead.
func ParseExtraction(raw string) (Extraction, error) {
	var payload extractionPayload
	if err := decodeJSONObject(raw, &payload); err != nil {
		return Extraction{}, err
	}

	return Extraction{
		IssueType:          normalizeField(payload.IssueType),
		Location:           normalizeField(payload.Location),
		Trigger:            normalizeField(payload.Trigger),
		Urgency:            normalizeField(payload.Urgency),
		MissingInformation: normalizeMissing(payload.MissingInformation),
	}, nil
}

func decodeJSONObject(raw string, v any) error {
	raw = strings.TrimSpace(raw)

	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return errors.New("extraction response contains no JSON object")
	}

	if err := json.Unmarshal([]byte(raw[start:end+1]), v); err != nil {
		return fmt.Errorf("failed to parse extraction JSON: %w", err)
	}

	return nil
}

func normalizeField(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return NotAvailable
	}
	return value
}

func normalizeMissing(value any) []string {
	switch v := value.(type) {
	case string:
		if cleaned := strings.TrimSpace(v); cleaned != "" {
			return []string{cleaned}
		}
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			if cleaned := strings.TrimSpace(fmt.Sprint(item)); cleaned != "" {
				items = append(items, cleaned)
			}
		}
		if len(items) > 0 {
			return items
		}
	}
	return []string{NotAvailable}
}
