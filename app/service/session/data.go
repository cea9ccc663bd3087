package session

type State string

const (
	StateNone                     State = ""
	StateAwaitingUserIdentity     State = "awaiting_user_identity"
	StateAwaitingTargetIdentity   State = "awaiting_target_identity"
	StateAwaitingContext          State = "awaiting_context"
	StateAwaitingPastConversation State = "awaiting_past_conversation"
	StateAwaitingModeSelection    State = "awaiting_mode_selection"
	StateAwaitingDraft            State = "awaiting_draft"
	StateComplete                 State = "conversation_complete"
)

// Session accumulates the conversation setup for one user. A zero Session
// (state StateNone) is what callers get when nothing is stored.
type Session struct {
	State            State  `json:"state,omitempty"`
	UserIdentity     string `json:"user_identity,omitempty"`
	TargetIdentity   string `json:"target_identity,omitempty"`
	Context          string `json:"context,omitempty"`
	PastConversation string `json:"past_conversation,omitempty"`
	Draft            string `json:"draft,omitempty"`
}

type PromptKind string

const (
	PromptGenerate PromptKind = "generate"
	PromptPolish   PromptKind = "polish"
)

// LastPrompt is the most recently assembled generation request, kept
// separately from the session so /more still works after the session
// reaches its terminal state.
type LastPrompt struct {
	Kind             PromptKind `json:"kind"`
	UserIdentity     string     `json:"user_identity"`
	TargetIdentity   string     `json:"target_identity"`
	Context          string     `json:"context"`
	PastConversation string     `json:"past_conversation"`
	Draft            string     `json:"draft,omitempty"`
}

func sessionKey(userID string) string {
	return "session:" + userID
}

func promptKey(userID string) string {
	return "prompt:" + userID
}
