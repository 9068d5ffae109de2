package llm

import "context"

// Provider is a minimal chat-completion client. Implementations return the
// full completion text; callers that need structured output set JSONOutput
// and parse the result themselves.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Message is one chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request describes a single completion call
type Request struct {
	Messages    []Message
	JSONOutput  bool
	Temperature float64
}
