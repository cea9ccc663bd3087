package variants

type Style string

const (
	StyleFormal   Style = "formal"
	StyleBalanced Style = "balanced"
	StyleCasual   Style = "casual"
)

// Variant is one alternative phrasing of a reply, tagged by tone.
type Variant struct {
	Style Style
	Title string
	Body  string
}

// IncompleteBody fills variant slots the model failed to produce.
const IncompleteBody = "（生成不完整）"

// positionStyles is the fallback tone order when the section label carries
// no recognizable style keyword.
var positionStyles = []Style{StyleFormal, StyleBalanced, StyleCasual}

var positionLabels = map[Style]string{
	StyleFormal:   "正式版",
	StyleBalanced: "平衡版",
	StyleCasual:   "輕鬆版",
}

func styleAt(position int) Style {
	if position < len(positionStyles) {
		return positionStyles[position]
	}

	return StyleCasual
}
