package assist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoftenGuarantees(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "guarantee and will be fixed",
			in:   "We guarantee the leak will be fixed by Friday.",
			want: "We commit the leak can be investigated and addressed by Friday.",
		},
		{
			name: "definitely",
			in:   "This will definitely stop the damp.",
			want: "This will likely stop the damp.",
		},
		{
			name: "is fixed",
			in:   "The wall is fixed now.",
			want: "The wall appears to be addressed now.",
		},
		{
			name: "for sure",
			in:   "We will handle it for sure.",
			want: "We will handle it as appropriate.",
		},
		{
			name: "clean text untouched",
			in:   "An inspection may help confirm the exact cause.",
			want: "An inspection may help confirm the exact cause.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, softenGuarantees(tt.in, ""))
		})
	}
}

func TestStripUnverifiedClaims(t *testing.T) {
	in := "A technician has been dispatched. Meanwhile, please keep the area dry."

	got := stripUnverifiedClaims(in, "user: damp patches on my wall")
	assert.Equal(t, "Meanwhile, please keep the area dry.", got)
}

func TestStripUnverifiedClaimsContextSupported(t *testing.T) {
	// The conversation itself already states the claim; restating it is
	// not a hallucination.
	context := "assistant: A technician has been dispatched to your address."
	in := "As mentioned, a technician has been dispatched. Please keep the area accessible."

	got := stripUnverifiedClaims(in, context)
	assert.Contains(t, got, "technician has been dispatched")
}

func TestNormalizeTone(t *testing.T) {
	in := "Hey, no worries, we're gonna check it ASAP."

	got := normalizeTone(in, "")
	assert.Equal(t, "hello, certainly, we're going to check it as soon as possible.", got)
}

func TestApplyGuardrailsRewritesCompletedActionClaim(t *testing.T) {
	in := "Your issue has been fixed. We recommend a follow-up inspection."

	verdict := ApplyGuardrails(in, "user: my roof leaks")

	assert.True(t, verdict.Rewritten)
	assert.False(t, verdict.Fallback)
	assert.Equal(t, "We recommend a follow-up inspection.", verdict.Text)
}

func TestApplyGuardrailsPassThrough(t *testing.T) {
	in := "Thank you for confirming the duration. An inspection may help confirm the exact cause."

	verdict := ApplyGuardrails(in, "")

	assert.False(t, verdict.Rewritten)
	assert.False(t, verdict.Fallback)
	assert.Equal(t, in, verdict.Text)
}

func TestApplyGuardrailsEmptyInput(t *testing.T) {
	verdict := ApplyGuardrails("   ", "")

	assert.True(t, verdict.Fallback)
	assert.Equal(t, FallbackEmptyReply, verdict.Text)
}

func TestApplyGuardrailsEverythingStripped(t *testing.T) {
	verdict := ApplyGuardrails("Your case is closed.", "user: hello")

	assert.True(t, verdict.Fallback)
	assert.Equal(t, FallbackFilteredReply, verdict.Text)
}

func TestApplyGuardrailsFixedPoint(t *testing.T) {
	inputs := []string{
		"We guarantee the leak will be fixed by Friday.",
		"A technician has been dispatched. Meanwhile, please keep the area dry.",
		"Hey, no worries, we're gonna check it ASAP.",
		"Your case is closed.",
		"Thanks for the details. An inspection may help confirm the exact cause.",
		"",
	}

	for _, in := range inputs {
		first := ApplyGuardrails(in, "user: damp wall")
		second := ApplyGuardrails(first.Text, "user: damp wall")
		assert.Equal(t, first.Text, second.Text, "input %q", in)
	}
}

func TestFallbackRepliesAreCompliant(t *testing.T) {
	for _, text := range []string{FallbackGenerationReply, FallbackEmptyReply, FallbackFilteredReply} {
		verdict := ApplyGuardrails(text, "")
		assert.Equal(t, text, verdict.Text)
		assert.False(t, verdict.Rewritten)
	}
}

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"One. Two! Three?", []string{"One.", "Two!", "Three?"}},
		{"No terminal punctuation", []string{"No terminal punctuation"}},
		{"Costs $1.50 per unit. Next sentence.", []string{"Costs $1.50 per unit.", "Next sentence."}},
		{"", nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, splitSentences(tt.in), "input %q", tt.in)
	}
}
