package variants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const markedOutput = `✅ 版本1【正式專業】
您好，關於課業問題想向您請教，不知道您何時方便？

✅ 版本2【平衡友善】
老師好，最近有些課業上的疑問，想找時間請教您。

✅ 版本3【輕鬆親切】
老師～我有些問題想問，方便的時候聊聊嗎😊`

func TestParseMarkedSections(t *testing.T) {
	result := Parse(markedOutput, 3)

	require.Len(t, result, 3)

	assert.Equal(t, StyleFormal, result[0].Style)
	assert.Equal(t, StyleBalanced, result[1].Style)
	assert.Equal(t, StyleCasual, result[2].Style)

	assert.Equal(t, "選項1：正式專業", result[0].Title)
	assert.Equal(t, "您好，關於課業問題想向您請教，不知道您何時方便？", result[0].Body)
	assert.Equal(t, "老師～我有些問題想問，方便的時候聊聊嗎😊", result[2].Body)
}

func TestParseOptionMarkerFormat(t *testing.T) {
	raw := `【選項1-正式委婉】
不好意思，想跟您確認一下進度。

【選項2-平衡適中】
請問那份資料準備好了嗎？

【選項3-輕鬆直接】
嗨，東西好了嗎？`

	result := Parse(raw, 3)

	require.Len(t, result, 3)
	assert.Equal(t, StyleFormal, result[0].Style)
	assert.Equal(t, StyleBalanced, result[1].Style)
	assert.Equal(t, StyleCasual, result[2].Style)
	assert.Equal(t, "嗨，東西好了嗎？", result[2].Body)
}

func TestParseMoreVersions(t *testing.T) {
	raw := `✅ 版本4【更委婉】
或許可以考慮看看？

✅ 版本5【更積極】
我很有信心能做好！

✅ 版本6【更詳細】
具體來說，我會先完成初稿，再跟您確認細節。`

	result := Parse(raw, 3)

	require.Len(t, result, 3)

	// 委婉 is a formal keyword; the other labels fall back to position
	assert.Equal(t, StyleFormal, result[0].Style)
	assert.Equal(t, StyleBalanced, result[1].Style)
	assert.Equal(t, StyleCasual, result[2].Style)
}

func TestParseUnmarkedFallback(t *testing.T) {
	raw := "這是一段沒有任何標記的回覆文字。"

	result := Parse(raw, 3)

	require.Len(t, result, 3)
	assert.Equal(t, "這是一段沒有任何標記的回覆文字。", result[0].Body)
	assert.Equal(t, IncompleteBody, result[1].Body)
	assert.Equal(t, IncompleteBody, result[2].Body)

	assert.Equal(t, StyleFormal, result[0].Style)
	assert.Equal(t, StyleBalanced, result[1].Style)
	assert.Equal(t, StyleCasual, result[2].Style)
}

func TestParseUnmarkedMultiline(t *testing.T) {
	raw := `第一個回覆。

第二個回覆。
第三個回覆。
第四個回覆。`

	result := Parse(raw, 3)

	require.Len(t, result, 3)
	assert.Equal(t, "第一個回覆。", result[0].Body)
	assert.Equal(t, "第二個回覆。", result[1].Body)
	assert.Equal(t, "第三個回覆。", result[2].Body)
}

func TestParseEmptyInput(t *testing.T) {
	result := Parse("", 3)

	require.Len(t, result, 3)
	for _, v := range result {
		assert.Equal(t, IncompleteBody, v.Body)
		assert.NotEmpty(t, v.Title)
	}
}

func TestParseNeverExceedsExpected(t *testing.T) {
	raw := markedOutput + "\n\n✅ 版本4【更委婉】\n多出來的版本。"

	result := Parse(raw, 3)

	require.Len(t, result, 3)
}

func TestParseFewerSectionsThanExpected(t *testing.T) {
	raw := "✅ 版本1【正式專業】\n只有一個版本。"

	result := Parse(raw, 3)

	require.Len(t, result, 3)
	assert.Equal(t, "只有一個版本。", result[0].Body)
	assert.Equal(t, IncompleteBody, result[1].Body)
	assert.Equal(t, IncompleteBody, result[2].Body)
}

func TestParseMarkedSectionWithEmptyBody(t *testing.T) {
	raw := "✅ 版本1【正式專業】\n\n✅ 版本2【平衡友善】\n有內容。\n\n✅ 版本3【輕鬆親切】\n也有內容。"

	result := Parse(raw, 3)

	require.Len(t, result, 3)
	assert.Equal(t, IncompleteBody, result[0].Body)
	assert.Equal(t, "有內容。", result[1].Body)
}

func TestParseIgnoresSeparatorLines(t *testing.T) {
	raw := "========================================\n✅ 版本1【正式專業】\n正文。\n========================================"

	result := Parse(raw, 1)

	require.Len(t, result, 1)
	assert.Equal(t, "正文。", result[0].Body)
}

func TestParseDropsPlaceholderLines(t *testing.T) {
	raw := `✅ 版本1【正式專業】
[提供30-80字的完整回覆，適合正式場合]

✅ 版本2【平衡友善】
好的，我會準備資料。

✅ 版本3【輕鬆親切】
［提供輕鬆口語的回覆］`

	result := Parse(raw, 3)

	require.Len(t, result, 3)
	assert.Equal(t, IncompleteBody, result[0].Body)
	assert.Equal(t, "好的，我會準備資料。", result[1].Body)
	assert.Equal(t, IncompleteBody, result[2].Body)
}

func TestParseKeepsBracketsInsideBody(t *testing.T) {
	raw := `✅ 版本1【正式專業】
您好，請參考 [附件一] 的內容，謝謝。

✅ 版本2【平衡友善】
[緊急] 這份要今天處理
詳細說明在信裡。`

	result := Parse(raw, 2)

	require.Len(t, result, 2)
	assert.Equal(t, "您好，請參考 [附件一] 的內容，謝謝。", result[0].Body)
	assert.Equal(t, "[緊急] 這份要今天處理\n詳細說明在信裡。", result[1].Body)
}

func TestParseZeroExpected(t *testing.T) {
	assert.Nil(t, Parse(markedOutput, 0))
}
