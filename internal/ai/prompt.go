package ai

import (
	"fmt"
	"strings"
)

// BuildPrompt просит ровно одно слово-метку и одно предложение пояснения
func BuildPrompt(subject string, headlines []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze the overall market sentiment of these recent news headlines for %s. ", subject)
	b.WriteString("Reply with exactly one word (BULLISH, BEARISH, or NEUTRAL), followed by a short 1-sentence summary of why.\n")
	b.WriteString("Headlines:")
	for _, h := range headlines {
		b.WriteString("\n- ")
		b.WriteString(h)
	}
	return b.String()
}
