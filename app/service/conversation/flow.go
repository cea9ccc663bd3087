package conversation

import (
	"chatthinker/app/service/session"
	"fmt"
	"unicode/utf8"
)

// captureStep is one field-collection turn: store the message into its
// session field, advance exactly one state, echo the value and ask for the
// next field.
type captureStep struct {
	next  session.State
	apply func(s *session.Session, value string)
	echo  func(value string) string
}

var captureSteps = map[session.State]captureStep{
	session.StateAwaitingUserIdentity: {
		next: session.StateAwaitingTargetIdentity,
		apply: func(s *session.Session, value string) {
			s.UserIdentity = value
		},
		echo: func(value string) string {
			return fmt.Sprintf("了解，你是：%s\n\n2. 請告訴我對話對象是誰？（例如：我的教授）", value)
		},
	},
	session.StateAwaitingTargetIdentity: {
		next: session.StateAwaitingContext,
		apply: func(s *session.Session, value string) {
			s.TargetIdentity = value
		},
		echo: func(value string) string {
			return fmt.Sprintf("了解，對象是：%s\n\n3. 請描述對話情境（例如：請教課業問題）", value)
		},
	},
	session.StateAwaitingContext: {
		next: session.StateAwaitingPastConversation,
		apply: func(s *session.Session, value string) {
			s.Context = value
		},
		echo: func(value string) string {
			return fmt.Sprintf("了解，情境是：%s\n\n4. 請提供過去的對話紀錄（如果沒有，請輸入「無」）", value)
		},
	},
	session.StateAwaitingPastConversation: {
		next: session.StateAwaitingModeSelection,
		apply: func(s *session.Session, value string) {
			s.PastConversation = value
		},
		echo: func(string) string {
			return "資料收集完成！\n\n請選擇模式：\n1. 輸入「生成」- 我會直接為你生成對話內容\n2. 輸入「潤飾」- 請提供你的對話草稿，我會幫你優化"
		},
	},
}

const truncationMarker = "…"

// truncate caps a captured field at limit runes, marking the cut.
func truncate(value string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(value) <= limit {
		return value
	}

	runes := []rune(value)

	return string(runes[:limit]) + truncationMarker
}
