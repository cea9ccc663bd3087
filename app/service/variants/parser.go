package variants

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/elliotchance/pie/v2"
)

// sectionMarkerRe matches the version headers the prompt templates ask for,
// e.g. "✅ 版本1【正式專業】" or "【選項2-平衡適中】".
var sectionMarkerRe = regexp.MustCompile(`(?m)^\s*(?:✅\s*)?【?\s*(?:版本|選項)\s*(\d+)\s*[【\-－:：]?\s*([^】\n]*?)】?\s*$`)

// Parse splits raw model output into exactly expected variants. It never
// fails: when the output ignores the section markers it falls back to
// line splitting, and missing slots are padded with IncompleteBody so the
// caller always gets a deterministic result size.
func Parse(raw string, expected int) []Variant {
	if expected <= 0 {
		return nil
	}

	result := parseSections(raw, expected)
	if result == nil {
		result = parseLines(raw, expected)
	}

	for len(result) < expected {
		i := len(result)
		style := styleAt(i)
		result = append(result, Variant{
			Style: style,
			Title: fmt.Sprintf("選項%d：%s", i+1, positionLabels[style]),
			Body:  IncompleteBody,
		})
	}

	return result[:expected]
}

func parseSections(raw string, expected int) []Variant {
	markers := sectionMarkerRe.FindAllStringSubmatchIndex(raw, -1)
	if len(markers) == 0 {
		return nil
	}

	result := make([]Variant, 0, expected)

	for i, marker := range markers {
		if len(result) >= expected {
			break
		}

		end := len(raw)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}

		label := strings.TrimSpace(raw[marker[4]:marker[5]])
		body := cleanBody(raw[marker[1]:end])
		if body == "" {
			body = IncompleteBody
		}

		style := matchStyle(label, len(result))
		if label == "" {
			label = positionLabels[style]
		}

		result = append(result, Variant{
			Style: style,
			Title: fmt.Sprintf("選項%d：%s", len(result)+1, label),
			Body:  body,
		})
	}

	return result
}

// parseLines is the degradation path: the first expected non-empty lines
// become the variant bodies, in positional tone order.
func parseLines(raw string, expected int) []Variant {
	lines := pie.Filter(strings.Split(raw, "\n"), func(line string) bool {
		trimmed := strings.TrimSpace(line)
		return trimmed != "" && !isSeparator(trimmed)
	})

	result := make([]Variant, 0, expected)

	for _, line := range lines {
		if len(result) >= expected {
			break
		}

		style := styleAt(len(result))
		result = append(result, Variant{
			Style: style,
			Title: fmt.Sprintf("選項%d：%s", len(result)+1, positionLabels[style]),
			Body:  strings.TrimSpace(line),
		})
	}

	return result
}

func matchStyle(label string, position int) Style {
	switch {
	case containsAny(label, "正式", "委婉", "professional", "formal", "polite"):
		return StyleFormal
	case containsAny(label, "平衡", "適中", "balanced", "neutral"):
		return StyleBalanced
	case containsAny(label, "輕鬆", "親切", "口語", "casual"):
		return StyleCasual
	default:
		return styleAt(position)
	}
}

func containsAny(s string, keywords ...string) bool {
	lower := strings.ToLower(s)

	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}

func cleanBody(section string) string {
	lines := strings.Split(section, "\n")

	kept := pie.Filter(lines, func(line string) bool {
		trimmed := strings.TrimSpace(line)
		return trimmed != "" && !isSeparator(trimmed) && !isPlaceholder(trimmed)
	})

	kept = pie.Map(kept, strings.TrimSpace)

	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// isPlaceholder reports whether a whole line is a bracketed template
// instruction the model echoed back, e.g. "[提供30-80字的完整回覆]". Brackets
// inside a reply are left untouched.
func isPlaceholder(line string) bool {
	return (strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]")) ||
		(strings.HasPrefix(line, "［") && strings.HasSuffix(line, "］"))
}

func isSeparator(line string) bool {
	return strings.Trim(line, "=-─") == ""
}
