package format

import (
	"fmt"
	"regexp"
)

const (
	// MarkdownV1 denotes Telegram markdown version 1.
	MarkdownV1 = 1
	// MarkdownV2 denotes Telegram markdown version 2.
	MarkdownV2 = 2
)

const (
	mdV1Specials = "_*`["
	mdV2Specials = "_*[]()~`>#+-=|{}.!"
)

// EscapeMarkdown escapes special characters for MarkdownV1 or V2.
// For V2, entityType narrows the escape set: inside "pre" and "code"
// only backslash and backtick are special, inside "text_link" and
// "custom_emoji" only backslash and the closing parenthesis.
func EscapeMarkdown(text string, version int, entityType string) (string, error) {
	var specials string
	switch version {
	case MarkdownV1:
		specials = mdV1Specials
	case MarkdownV2:
		switch entityType {
		case "pre", "code":
			specials = "\\`"
		case "text_link", "custom_emoji":
			specials = "\\)"
		default:
			specials = mdV2Specials
		}
	default:
		return "", fmt.Errorf("unsupported markdown version: %d", version)
	}
	re := regexp.MustCompile("([" + regexp.QuoteMeta(specials) + "])")
	return re.ReplaceAllString(text, `\$1`), nil
}
