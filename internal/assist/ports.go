package assist

import "context"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one role-tagged message in a conversation.
type Turn struct {
	Role    Role   `json:"role" validate:"required,chatrole"`
	Content string `json:"content" validate:"required,maxbytes"`
}

// TurnRequest is the unit of work for one pass through the pipeline.
// The caller owns the history; nothing here survives the request.
type TurnRequest struct {
	History []Turn `json:"history" validate:"max=100,dive"`
	Message string `json:"message" validate:"notblank,maxbytes"`
}

// ReplyResult is the only externally visible output.
type ReplyResult struct {
	Reply string `json:"reply"`
}

// Extraction holds the structured facts pulled from the conversation.
// Internal only: it rides along as hidden guidance for reply generation
// and is never serialized back to the caller.
type Extraction struct {
	IssueType          string   `json:"issue_type"`
	Location           string   `json:"location"`
	Trigger            string   `json:"trigger"`
	Urgency            string   `json:"urgency"`
	MissingInformation []string `json:"missing_information"`
}

// Verdict is the outcome of guardrail filtering a candidate reply.
type Verdict struct {
	Text      string
	Rewritten bool // at least one rule changed the text
	Fallback  bool // rules left nothing usable, static fallback substituted
}

// Service — orchestration, one turn in, one reply out.
type Service interface {
	ProcessTurn(ctx context.Context, req TurnRequest) (ReplyResult, error)
}
