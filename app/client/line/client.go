package line

import (
	"chatthinker/app/config"
	"fmt"
	"net/http"
	"time"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"github.com/samber/do"
)

const requestTimeout = 10 * time.Second

// ErrInvalidSignature is returned by ParseWebhook when the X-Line-Signature
// header does not match the request body.
var ErrInvalidSignature = webhook.ErrInvalidSignature

// Client wraps the LINE Messaging API. Every inbound webhook event carries
// a one-shot reply token; exactly one reply call is made per token.
type Client struct {
	cfg *config.Config
	api *messaging_api.MessagingApiAPI
}

func NewClient(di *do.Injector) (*Client, error) {
	cfg := do.MustInvoke[*config.Config](di)

	api, err := messaging_api.NewMessagingApiAPI(
		cfg.Line.ChannelToken,
		messaging_api.WithHTTPClient(&http.Client{
			Timeout: requestTimeout,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging API client: %w", err)
	}

	return &Client{
		cfg: cfg,
		api: api,
	}, nil
}

// ParseWebhook verifies the request signature against the channel secret
// and decodes the callback payload.
func (c *Client) ParseWebhook(r *http.Request) (*webhook.CallbackRequest, error) {
	return webhook.ParseRequest(c.cfg.Line.ChannelSecret, r)
}

// ReplyText answers an event with a plain text message.
func (c *Client) ReplyText(replyToken, text string) error {
	_, err := c.api.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to call reply API: %w", err)
	}

	return nil
}

// ReplyFlex answers an event with a flex container, falling back to
// altText on clients that cannot render it.
func (c *Client) ReplyFlex(replyToken, altText string, contents messaging_api.FlexContainerInterface) error {
	_, err := c.api.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages: []messaging_api.MessageInterface{
			messaging_api.FlexMessage{
				AltText:  altText,
				Contents: contents,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to call reply API: %w", err)
	}

	return nil
}
