package ai

import "context"

// Provider is the external completion service. It knows nothing about
// leads, prompts, or HTTP: it takes chat messages and returns text.
type Provider interface {
	Complete(ctx context.Context, system string, messages []Message) (string, error)
}

// Message is the universal dialog format handed to the provider.
type Message struct {
	Role string // "user" | "assistant" | "system"
	Text string
}
