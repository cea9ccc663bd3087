package line

import "github.com/line/line-bot-sdk-go/v8/linebot/webhook"

// TextMessage is one inbound text message with everything the conversation
// flow needs from the event.
type TextMessage struct {
	UserID     string
	ReplyToken string
	Text       string
}

// ExtractTextMessage pulls a routable text message out of a webhook event.
// Stickers, follows, sourceless events and the rest of the event zoo come
// back with ok=false.
func ExtractTextMessage(event webhook.EventInterface) (TextMessage, bool) {
	messageEvent, ok := event.(webhook.MessageEvent)
	if !ok {
		return TextMessage{}, false
	}

	text, ok := messageEvent.Message.(webhook.TextMessageContent)
	if !ok {
		return TextMessage{}, false
	}

	var userID string

	switch source := messageEvent.Source.(type) {
	case webhook.UserSource:
		userID = source.UserId
	case webhook.GroupSource:
		userID = source.UserId
	case webhook.RoomSource:
		userID = source.UserId
	}

	if userID == "" {
		return TextMessage{}, false
	}

	return TextMessage{
		UserID:     userID,
		ReplyToken: messageEvent.ReplyToken,
		Text:       text.Text,
	}, true
}
