package line

import (
	"chatthinker/app/service/variants"

	"github.com/elliotchance/pie/v2"
	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
)

var styleEmojis = map[variants.Style]string{
	variants.StyleFormal:   "👔",
	variants.StyleBalanced: "🤝",
	variants.StyleCasual:   "😊",
}

// BuildVariantCarousel renders parsed reply variants as a flex carousel,
// one bubble per variant with a one-tap "use this" button that sends the
// body text back into the chat.
func BuildVariantCarousel(list []variants.Variant) *messaging_api.FlexCarousel {
	bubbles := pie.Map(list, func(v variants.Variant) messaging_api.FlexBubble {
		return messaging_api.FlexBubble{
			Size: messaging_api.FlexBubbleSIZE_KILO,
			Header: &messaging_api.FlexBox{
				Layout:          messaging_api.FlexBoxLAYOUT_HORIZONTAL,
				BackgroundColor: "#F0F0F0",
				PaddingAll:      "10px",
				Contents: []messaging_api.FlexComponentInterface{
					&messaging_api.FlexText{
						Text: styleEmojis[v.Style],
						Size: "sm",
					},
					&messaging_api.FlexText{
						Text:   v.Title,
						Weight: messaging_api.FlexTextWEIGHT_BOLD,
						Color:  "#1DB446",
						Size:   "sm",
						Flex:   1,
						Margin: "md",
					},
				},
			},
			Body: &messaging_api.FlexBox{
				Layout:     messaging_api.FlexBoxLAYOUT_VERTICAL,
				PaddingAll: "15px",
				Contents: []messaging_api.FlexComponentInterface{
					&messaging_api.FlexText{
						Text:  v.Body,
						Wrap:  true,
						Size:  "sm",
						Color: "#333333",
					},
				},
			},
			Footer: &messaging_api.FlexBox{
				Layout:     messaging_api.FlexBoxLAYOUT_VERTICAL,
				Spacing:    "sm",
				PaddingAll: "10px",
				Contents: []messaging_api.FlexComponentInterface{
					&messaging_api.FlexButton{
						Style:  messaging_api.FlexButtonSTYLE_PRIMARY,
						Color:  "#1DB446",
						Height: messaging_api.FlexButtonHEIGHT_SM,
						Action: &messaging_api.MessageAction{
							Label: "📋 使用這個",
							Text:  v.Body,
						},
					},
				},
			},
		}
	})

	return &messaging_api.FlexCarousel{
		Contents: bubbles,
	}
}
