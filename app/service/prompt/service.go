package prompt

import (
	"chatthinker/app/service/session"
	"fmt"
	"strings"

	_ "embed"
)

//go:embed generate_prompt_template.txt
var generatePromptTemplate string

//go:embed polish_prompt_template.txt
var polishPromptTemplate string

//go:embed more_prompt_template.txt
var morePromptTemplate string

// EmptyPastPlaceholder stands in for an absent past-conversation field.
const EmptyPastPlaceholder = "無"

const questionContextInstruction = `特別注意：對方提出了問題，你的回覆必須直接回答這個問題。
從過去對話中找出對方的疑問，並在回覆中給予具體答案。`

// Request is a fully assembled generation request. Kind distinguishes fresh
// generation from draft refinement; the same tag later picks the /more
// continuation wording.
type Request struct {
	Kind             session.PromptKind
	UserIdentity     string
	TargetIdentity   string
	Context          string
	PastConversation string
	Draft            string
}

// Assemble builds a request from the captured session fields. A non-empty
// draft switches the request to draft refinement.
func Assemble(s session.Session, draft string) Request {
	kind := session.PromptGenerate
	if draft != "" {
		kind = session.PromptPolish
	}

	past := s.PastConversation
	if past == "" {
		past = EmptyPastPlaceholder
	}

	return Request{
		Kind:             kind,
		UserIdentity:     s.UserIdentity,
		TargetIdentity:   s.TargetIdentity,
		Context:          s.Context,
		PastConversation: past,
		Draft:            draft,
	}
}

func FromLastPrompt(p session.LastPrompt) Request {
	return Request{
		Kind:             p.Kind,
		UserIdentity:     p.UserIdentity,
		TargetIdentity:   p.TargetIdentity,
		Context:          p.Context,
		PastConversation: p.PastConversation,
		Draft:            p.Draft,
	}
}

func (r Request) ToLastPrompt() session.LastPrompt {
	return session.LastPrompt{
		Kind:             r.Kind,
		UserIdentity:     r.UserIdentity,
		TargetIdentity:   r.TargetIdentity,
		Context:          r.Context,
		PastConversation: r.PastConversation,
		Draft:            r.Draft,
	}
}

// Render fills the template matching the request kind.
func (r Request) Render() string {
	values := r.templateValues()

	if r.Kind == session.PromptPolish {
		return fill(polishPromptTemplate, values)
	}

	var instruction string
	if r.PastConversation != EmptyPastPlaceholder && strings.Contains(r.PastConversation, "？") {
		instruction = questionContextInstruction
	}
	values["context_instruction"] = instruction

	return fill(generatePromptTemplate, values)
}

// RenderMore fills the continuation template asking for three further
// versions of the same request.
func (r Request) RenderMore() string {
	values := r.templateValues()

	if r.Kind == session.PromptPolish {
		values["task_description"] = "優化草稿"
	} else {
		values["task_description"] = "回覆對話"
	}

	return fill(morePromptTemplate, values)
}

func (r Request) templateValues() map[string]any {
	return map[string]any{
		"user_identity":     r.UserIdentity,
		"target_identity":   r.TargetIdentity,
		"context":           r.Context,
		"past_conversation": r.PastConversation,
		"draft":             r.Draft,
	}
}

func fill(template string, values map[string]any) string {
	result := template
	for key, value := range values {
		result = strings.ReplaceAll(result, "{"+key+"}", fmt.Sprint(value))
	}

	return result
}
