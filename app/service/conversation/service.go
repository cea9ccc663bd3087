package conversation

import (
	"chatthinker/app/client/llm"
	"chatthinker/app/config"
	"chatthinker/app/service/prompt"
	"chatthinker/app/service/session"
	"chatthinker/app/service/variants"
	"context"
	"log/slog"
	"strings"

	"github.com/samber/do"
)

// Generator is the external text-generation collaborator.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Service struct {
	cfg   *config.Config
	store session.Store
	gen   Generator
}

func New(di *do.Injector) (*Service, error) {
	return newService(
		do.MustInvoke[*config.Config](di),
		do.MustInvoke[session.Store](di),
		do.MustInvoke[*llm.Client](di),
	), nil
}

func newService(cfg *config.Config, store session.Store, gen Generator) *Service {
	return &Service{
		cfg:   cfg,
		store: store,
		gen:   gen,
	}
}

// HandleMessage runs one inbound message through the flow and always
// returns exactly one reply; no failure escapes without one.
func (s *Service) HandleMessage(ctx context.Context, userID, text string) Reply {
	switch text {
	case cmdReset:
		return s.handleReset(ctx, userID)
	case cmdMore:
		return s.handleMore(ctx, userID)
	}

	sess, err := s.store.Get(ctx, userID)
	if err != nil {
		slog.Error("Failed to read session", "user_id", userID, "error", err)
		return Reply{Text: replyStoreFailed}
	}

	return s.advance(ctx, userID, sess, text)
}

func (s *Service) handleReset(ctx context.Context, userID string) Reply {
	if err := s.store.Delete(ctx, userID); err != nil {
		slog.Error("Failed to clear session", "user_id", userID, "error", err)
		return Reply{Text: replyStoreFailed}
	}

	sess := session.Session{State: session.StateAwaitingUserIdentity}
	if err := s.store.Put(ctx, userID, sess); err != nil {
		slog.Error("Failed to write session", "user_id", userID, "error", err)
		return Reply{Text: replyStoreFailed}
	}

	return Reply{Text: replyStartNew}
}

func (s *Service) handleMore(ctx context.Context, userID string) Reply {
	lastPrompt, err := s.store.GetLastPrompt(ctx, userID)
	if err != nil {
		slog.Error("Failed to read last prompt", "user_id", userID, "error", err)
		return Reply{Text: replyStoreFailed}
	}
	if lastPrompt == nil {
		return Reply{Text: replyNoLastPrompt}
	}

	req := prompt.FromLastPrompt(*lastPrompt)

	raw, err := s.gen.Generate(ctx, req.RenderMore())
	if err != nil {
		slog.Error("Generation failed", "user_id", userID, "error", err)
		return Reply{Text: replyGenerationFailed}
	}

	list := variants.Parse(raw, s.cfg.Session.VariantCount)

	return variantReply(headerMore, footerMore, list)
}

func (s *Service) advance(ctx context.Context, userID string, sess session.Session, text string) Reply {
	if sess.State == session.StateNone {
		return Reply{Text: replyWelcome}
	}

	if step, ok := captureSteps[sess.State]; ok {
		value := truncate(text, s.cfg.Session.TruncateLimit)
		step.apply(&sess, value)
		sess.State = step.next

		if err := s.store.Put(ctx, userID, sess); err != nil {
			slog.Error("Failed to write session", "user_id", userID, "error", err)
			return Reply{Text: replyStoreFailed}
		}

		return Reply{Text: step.echo(value)}
	}

	switch sess.State {
	case session.StateAwaitingModeSelection:
		return s.selectMode(ctx, userID, sess, strings.TrimSpace(text))

	case session.StateAwaitingDraft:
		draft := truncate(strings.TrimSpace(text), s.cfg.Session.TruncateLimit)
		if draft == "" {
			return Reply{Text: replyAskDraft}
		}

		return s.polish(ctx, userID, sess, draft)

	case session.StateComplete:
		return Reply{Text: replyComplete}

	default:
		slog.Warn("Unknown session state", "user_id", userID, "state", sess.State)
		return Reply{Text: replyUnknownState}
	}
}

func (s *Service) selectMode(ctx context.Context, userID string, sess session.Session, token string) Reply {
	switch token {
	case modeGenerate:
		sess.State = session.StateComplete
		if err := s.store.Put(ctx, userID, sess); err != nil {
			slog.Error("Failed to write session", "user_id", userID, "error", err)
			return Reply{Text: replyStoreFailed}
		}

		return s.generate(ctx, userID, prompt.Assemble(sess, ""), headerGenerate, footerGenerate)

	case modePolish:
		sess.State = session.StateAwaitingDraft
		if err := s.store.Put(ctx, userID, sess); err != nil {
			slog.Error("Failed to write session", "user_id", userID, "error", err)
			return Reply{Text: replyStoreFailed}
		}

		return Reply{Text: replyAskDraft}

	default:
		return Reply{Text: replyModeInvalid}
	}
}

func (s *Service) polish(ctx context.Context, userID string, sess session.Session, draft string) Reply {
	sess.Draft = draft
	sess.State = session.StateComplete

	if err := s.store.Put(ctx, userID, sess); err != nil {
		slog.Error("Failed to write session", "user_id", userID, "error", err)
		return Reply{Text: replyStoreFailed}
	}

	return s.generate(ctx, userID, prompt.Assemble(sess, draft), headerPolish, footerPolish)
}

// generate persists the assembled request as the last prompt before the
// network call, so /more stays usable even when the call itself fails.
func (s *Service) generate(ctx context.Context, userID string, req prompt.Request, header, footer string) Reply {
	if err := s.store.PutLastPrompt(ctx, userID, req.ToLastPrompt()); err != nil {
		slog.Error("Failed to write last prompt", "user_id", userID, "error", err)
		return Reply{Text: replyStoreFailed}
	}

	raw, err := s.gen.Generate(ctx, req.Render())
	if err != nil {
		slog.Error("Generation failed", "user_id", userID, "error", err)
		return Reply{Text: replyGenerationFailed}
	}

	list := variants.Parse(raw, s.cfg.Session.VariantCount)

	return variantReply(header, footer, list)
}
