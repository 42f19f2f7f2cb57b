package generator

import (
	"fmt"
	"strings"
)

// buildPrompt renders the configured template for a topic.
// Templates without a %s verb get the topic appended.
func buildPrompt(template, topic string) string {
	topic = strings.TrimSpace(topic)
	if strings.Contains(template, "%s") {
		return fmt.Sprintf(template, topic)
	}
	return strings.TrimSpace(template + " " + topic)
}

// cleanCaption trims whitespace and one pair of wrapping double quotes
func cleanCaption(text string) string {
	text = strings.TrimSpace(text)
	for _, pair := range [][2]string{{`"`, `"`}, {"“", "”"}} {
		if len(text) > len(pair[0])+len(pair[1]) && strings.HasPrefix(text, pair[0]) && strings.HasSuffix(text, pair[1]) {
			text = strings.TrimSpace(text[len(pair[0]) : len(text)-len(pair[1])])
			break
		}
	}
	return text
}
