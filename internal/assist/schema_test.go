package assist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() TurnRequest {
	return TurnRequest{
		History: []Turn{
			{Role: RoleUser, Content: "Damp patches appear on my wall during rainy season."},
			{Role: RoleAssistant, Content: "Could you tell me how long this has been happening?"},
		},
		Message: "They are from past 1 year.",
	}
}

func TestValidateTurnRequestValid(t *testing.T) {
	req := validRequest()
	assert.Nil(t, ValidateTurnRequest(&req))
}

func TestValidateTurnRequestEmptyHistory(t *testing.T) {
	req := TurnRequest{Message: "hello"}
	assert.Nil(t, ValidateTurnRequest(&req))
}

func TestValidateTurnRequestSystemRole(t *testing.T) {
	req := validRequest()
	req.History[0].Role = "system"

	verr := ValidateTurnRequest(&req)

	require.NotNil(t, verr)
	assert.Equal(t, "history[0].role", verr.Field)
	assert.Contains(t, verr.Reason, `"user" or "assistant"`)
}

func TestValidateTurnRequestMixedCaseRole(t *testing.T) {
	req := validRequest()
	req.History[0].Role = "User"

	assert.Nil(t, ValidateTurnRequest(&req))
}

func TestValidateTurnRequestMissingContent(t *testing.T) {
	req := validRequest()
	req.History[1].Content = ""

	verr := ValidateTurnRequest(&req)

	require.NotNil(t, verr)
	assert.Equal(t, "history[1].content", verr.Field)
}

func TestValidateTurnRequestMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		wantErr bool
	}{
		{"missing", "", true},
		{"blank", "   \n\t", true},
		{"present", "roof is leaking", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Message = tt.message

			verr := ValidateTurnRequest(&req)
			if !tt.wantErr {
				assert.Nil(t, verr)
				return
			}
			require.NotNil(t, verr)
			assert.Equal(t, "message", verr.Field)
		})
	}
}

func TestValidateTurnRequestOversizeContent(t *testing.T) {
	req := validRequest()
	req.History[0].Content = strings.Repeat("x", MaxContentBytes+1)

	verr := ValidateTurnRequest(&req)

	require.NotNil(t, verr)
	assert.Equal(t, "history[0].content", verr.Field)
	assert.Contains(t, verr.Reason, "size")
}

func TestValidateTurnRequestTooManyTurns(t *testing.T) {
	req := validRequest()
	req.History = make([]Turn, MaxHistoryTurns+1)
	for i := range req.History {
		req.History[i] = Turn{Role: RoleUser, Content: "turn"}
	}

	verr := ValidateTurnRequest(&req)

	require.NotNil(t, verr)
	assert.Equal(t, "history", verr.Field)
}
