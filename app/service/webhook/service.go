package webhook

import (
	"bytes"
	"chatthinker/app/client/line"
	"chatthinker/app/config"
	"chatthinker/app/service/conversation"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/do"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Service is the inbound edge: it terminates the LINE webhook, verifies
// signatures and pushes each text message through the conversation flow.
type Service struct {
	cfg             *config.Config
	appCtx          context.Context
	conversationSvc *conversation.Service
	lineClient      *line.Client
	app             *fiber.App
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		cfg:             do.MustInvoke[*config.Config](di),
		appCtx:          do.MustInvoke[context.Context](di),
		conversationSvc: do.MustInvoke[*conversation.Service](di),
		lineClient:      do.MustInvoke[*line.Client](di),
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Post("/callback", s.handleCallback)

	s.app = app

	return s, nil
}

func (s *Service) Run(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return s.app.Listen(s.cfg.Server.Addr)
	})

	group.Go(func() error {
		<-ctx.Done()
		return s.app.ShutdownWithTimeout(shutdownTimeout)
	})

	return group.Wait()
}

func (s *Service) handleCallback(c *fiber.Ctx) error {
	// the SDK verifier wants an *http.Request, fiber hands us fasthttp
	req, err := http.NewRequest(http.MethodPost, "/callback", bytes.NewReader(c.Body()))
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	req.Header.Set("X-Line-Signature", c.Get("X-Line-Signature"))

	callback, err := s.lineClient.ParseWebhook(req)
	if err != nil {
		if errors.Is(err, line.ErrInvalidSignature) {
			slog.Warn("Webhook signature mismatch")
		} else {
			slog.Warn("Failed to parse webhook body", "error", err)
		}

		return c.SendStatus(fiber.StatusBadRequest)
	}

	for _, event := range callback.Events {
		msg, ok := line.ExtractTextMessage(event)
		if !ok {
			continue
		}

		s.handleTextMessage(msg)
	}

	return c.SendString("OK")
}

func (s *Service) handleTextMessage(msg line.TextMessage) {
	start := time.Now()

	reply := s.conversationSvc.HandleMessage(s.appCtx, msg.UserID, msg.Text)

	if err := s.sendReply(msg.ReplyToken, reply); err != nil {
		slog.Error("Failed to send reply",
			"user_id", msg.UserID,
			"error", err,
		)
		return
	}

	slog.Info("Processed message",
		"user_id", msg.UserID,
		"duration", time.Since(start),
	)
}

func (s *Service) sendReply(replyToken string, reply conversation.Reply) error {
	if len(reply.Variants) > 0 {
		err := s.lineClient.ReplyFlex(replyToken, reply.AltText, line.BuildVariantCarousel(reply.Variants))
		if err == nil {
			return nil
		}

		// the token stays valid until a reply succeeds, so retry as text
		slog.Warn("Flex reply rejected, falling back to text", "error", err)
	}

	return s.lineClient.ReplyText(replyToken, reply.Text)
}
