package assist

import (
	"regexp"
	"strings"
	"unicode"
)

// Guardrails are local, deterministic text rules applied to every
// candidate reply before it leaves the pipeline. No provider calls:
// filtering works even when the provider is down. Rules run in fixed
// order and each rule's output feeds the next; running the filter on
// its own output changes nothing.

// Rule is a pure text transformation. The conversation context rides
// along so claim checks can tell hallucinated statements from ones the
// conversation itself supports.
type Rule struct {
	Name  string
	Apply func(text, contextBlob string) string
}

// GuardrailRules in application order: guarantees softened first so the
// claim filter sees final wording, tone normalized last.
var GuardrailRules = []Rule{
	{Name: "soften_guarantees", Apply: softenGuarantees},
	{Name: "strip_unverified_claims", Apply: stripUnverifiedClaims},
	{Name: "normalize_tone", Apply: normalizeTone},
}

// ApplyGuardrails runs the full rule chain over a candidate reply.
// Empty input, or a chain that strips everything, substitutes a static
// fallback so the caller always receives usable text.
func ApplyGuardrails(reply, contextBlob string) Verdict {
	cleaned := strings.TrimSpace(reply)
	if cleaned == "" {
		return Verdict{Text: FallbackEmptyReply, Fallback: true}
	}

	original := cleaned
	for _, rule := range GuardrailRules {
		cleaned = strings.TrimSpace(rule.Apply(cleaned, contextBlob))
	}

	if cleaned == "" {
		return Verdict{Text: FallbackFilteredReply, Fallback: true}
	}

	return Verdict{Text: cleaned, Rewritten: cleaned != original}
}

type rewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

// Longer phrases come before the single words they contain, so the
// phrase-level rewrite wins.
var guaranteeRewrites = []rewrite{
	{regexp.MustCompile(`(?i)\bi cannot guarantee an outcome until the team verifies the details\.?`), "An inspection may help confirm the exact cause."},
	{regexp.MustCompile(`(?i)\bi can't guarantee an outcome until the team verifies the details\.?`), "An inspection may help confirm the exact cause."},
	{regexp.MustCompile(`(?i)\bwill be fixed\b`), "can be investigated and addressed"},
	{regexp.MustCompile(`(?i)\bis fixed\b`), "appears to be addressed"},
	{regexp.MustCompile(`(?i)\bguarantee\b`), "commit"},
	{regexp.MustCompile(`(?i)\bdefinitely\b`), "likely"},
	{regexp.MustCompile(`(?i)\bfor sure\b`), "as appropriate"},
	{regexp.MustCompile(`(?i)\b100%`), "to the best of our assessment"},
}

func softenGuarantees(text, _ string) string {
	for _, r := range guaranteeRewrites {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}

// riskyMarkers flag sentences claiming an action this system cannot have
// performed.
var riskyMarkers = []string{
	"already resolved",
	"issue has been fixed",
	"we fixed",
	"refund has been issued",
	"technician has been dispatched",
	"your case is closed",
}

// stripUnverifiedClaims drops completed-action sentences unless the
// conversation context contains the same claim, in which case the reply
// is only restating what the client was already told.
func stripUnverifiedClaims(text, contextBlob string) string {
	contextLower := strings.ToLower(contextBlob)

	kept := make([]string, 0, 4)
	for _, sentence := range splitSentences(text) {
		sentenceLower := strings.ToLower(sentence)

		risky := false
		for _, marker := range riskyMarkers {
			if strings.Contains(sentenceLower, marker) {
				risky = true
				break
			}
		}
		if !risky {
			kept = append(kept, sentence)
			continue
		}

		for _, marker := range riskyMarkers {
			if strings.Contains(contextLower, marker) {
				kept = append(kept, sentence)
				break
			}
		}
	}

	return strings.Join(kept, " ")
}

var toneRewrites = []rewrite{
	{regexp.MustCompile(`(?i)\bgonna\b`), "going to"},
	{regexp.MustCompile(`(?i)\bwanna\b`), "want to"},
	{regexp.MustCompile(`(?i)\bgotta\b`), "have to"},
	{regexp.MustCompile(`(?i)\byeah\b`), "yes"},
	{regexp.MustCompile(`(?i)\byep\b`), "yes"},
	{regexp.MustCompile(`(?i)\bnope\b`), "no"},
	{regexp.MustCompile(`(?i)\basap\b`), "as soon as possible"},
	{regexp.MustCompile(`(?i)\bno worries\b`), "certainly"},
	{regexp.MustCompile(`(?i)\bhey\b`), "hello"},
}

func normalizeTone(text, _ string) string {
	for _, r := range toneRewrites {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}
	return text
}

// splitSentences splits on sentence-ending punctuation followed by
// whitespace or end of text.
func splitSentences(text string) []string {
	runes := []rune(strings.TrimSpace(text))

	var out []string
	var b strings.Builder
	for i, r := range runes {
		b.WriteRune(r)
		if !isSentenceEnd(r) {
			continue
		}
		if i+1 == len(runes) || unicode.IsSpace(runes[i+1]) {
			if s := strings.TrimSpace(b.String()); s != "" {
				out = append(out, s)
			}
			b.Reset()
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		out = append(out, s)
	}

	return out
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
