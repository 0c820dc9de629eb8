package model

import (
	"strings"
	"unicode"
)

// Sentiment метка настроения рынка, которой начинается ответ модели
type Sentiment string

const (
	SentimentBullish Sentiment = "BULLISH"
	SentimentBearish Sentiment = "BEARISH"
	SentimentNeutral Sentiment = "NEUTRAL"
	SentimentUnknown Sentiment = "UNKNOWN"
)

// ParseSentiment достаёт метку из первого слова ответа.
// Текст ответа не проверяется и не меняется, метка нужна только для метрик.
func ParseSentiment(text string) Sentiment {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return SentimentUnknown
	}

	word := strings.ToUpper(strings.TrimFunc(fields[0], func(r rune) bool {
		return !unicode.IsLetter(r)
	}))

	switch Sentiment(word) {
	case SentimentBullish, SentimentBearish, SentimentNeutral:
		return Sentiment(word)
	}
	return SentimentUnknown
}
