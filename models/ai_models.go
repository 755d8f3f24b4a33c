package models

// ChatMessage is one prior turn of a buddy conversation supplied by the client.
// Role is one of "system", "user", "assistant" or "tool"; ToolCallID is only
// meaningful for tool-role messages.
type ChatMessage struct {
	Role       string `json:"role"`
	Content    string `json:"content"`
	ToolCallID string `json:"tool_call_id,omitempty"`
}

// BuddyRequest defines the structure for requests to the buddy assistant.
type BuddyRequest struct {
	Message      string        `json:"message"`
	Context      string        `json:"context,omitempty"`
	History      []ChatMessage `json:"history,omitempty"`
	VoiceEnabled bool          `json:"voice_enabled,omitempty"`
}

// BuddyResponse carries the assistant's answer and, when voice is enabled,
// a relative URL the client fetches the synthesized audio from.
type BuddyResponse struct {
	Response string  `json:"response"`
	AudioURL *string `json:"audio_url,omitempty"`
}
