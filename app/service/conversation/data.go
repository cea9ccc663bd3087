package conversation

import (
	"chatthinker/app/service/variants"
	"fmt"
	"strings"
)

const (
	cmdReset = "/new"
	cmdMore  = "/more"

	modeGenerate = "生成"
	modePolish   = "潤飾"
)

const (
	replyWelcome  = "歡迎使用聊天優化機器人！\n\n請輸入 /new 開始新對話\n或輸入 /more 生成更多內容"
	replyStartNew = "開始新的對話！請告訴我：\n1. 你是誰？（例如：我是一個大學生）"

	replyModeInvalid  = "請輸入「生成」或「潤飾」來選擇模式"
	replyAskDraft     = "請提供你的對話草稿："
	replyComplete     = "對話已完成！\n\n你可以：\n- 輸入 /more 生成更多內容\n- 輸入 /new 開始新對話"
	replyUnknownState = "系統錯誤，請輸入 /new 重新開始"

	replyNoLastPrompt     = "沒有找到之前的對話內容。請先開始一個新的對話（輸入 /new）"
	replyGenerationFailed = "抱歉，生成回覆時發生了問題，請稍後再試，或輸入 /new 重新開始"
	replyStoreFailed      = "系統暫時無法使用，請稍後再試"
)

const (
	headerGenerate = "📝 以下是3個回覆選項，請選擇適合的複製使用："
	footerGenerate = "💡 小提示：直接長按訊息即可複製\n輸入 /more 可獲得更多版本"

	headerPolish = "✨ 以下是優化後的3個版本："
	footerPolish = "💡 小提示：直接長按訊息即可複製"

	headerMore = "🔄 更多回覆選項："
	footerMore = "💡 還需要更多？再輸入 /more"
)

// Reply is the single outbound answer to one inbound message. When
// Variants is non-empty the transport may render them as cards, with Text
// as the plain fallback.
type Reply struct {
	Text     string
	AltText  string
	Variants []variants.Variant
}

func variantReply(header, footer string, list []variants.Variant) Reply {
	divider := strings.Repeat("=", 40)

	var builder strings.Builder
	builder.WriteString(header)
	builder.WriteString("\n\n")
	builder.WriteString(divider)
	builder.WriteString("\n")

	for i, v := range list {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(fmt.Sprintf("✅ %s\n%s\n", v.Title, v.Body))
	}

	builder.WriteString(divider)
	builder.WriteString("\n\n")
	builder.WriteString(footer)

	return Reply{
		Text:     builder.String(),
		AltText:  header,
		Variants: list,
	}
}
