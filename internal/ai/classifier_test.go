package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ivanoskov/sentiment_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	resp *genai.GenerateContentResponse
	err  error

	gotModel  string
	gotPrompt string
	calls     int
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, modelName string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls++
	f.gotModel = modelName
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.gotPrompt = contents[0].Parts[0].Text
	}
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: p})
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func newTestClassifier(gen generator) *Classifier {
	return &Classifier{models: gen, model: "gemini-2.0-flash", logger: zap.NewNop()}
}

func kindOf(t *testing.T, err error) model.ErrorKind {
	t.Helper()
	var lookupErr *model.LookupError
	require.True(t, errors.As(err, &lookupErr))
	return lookupErr.Kind
}

func TestClassify_ReturnsTrimmedText(t *testing.T) {
	gen := &fakeGenerator{resp: textResponse("  BULLISH. Positive ETF inflow news.\n")}
	c := newTestClassifier(gen)

	got, err := c.Classify(context.Background(), "solana", []string{"Solana ETF inflows surge"})
	require.NoError(t, err)
	assert.Equal(t, "BULLISH. Positive ETF inflow news.", got)
	assert.Equal(t, "gemini-2.0-flash", gen.gotModel)
	assert.Contains(t, gen.gotPrompt, "Solana ETF inflows surge")
	assert.Contains(t, gen.gotPrompt, "for solana.")
}

func TestClassify_JoinsParts(t *testing.T) {
	c := newTestClassifier(&fakeGenerator{resp: textResponse("BEARISH. ", "Exchange hack.")})

	got, err := c.Classify(context.Background(), "btc", []string{"h"})
	require.NoError(t, err)
	assert.Equal(t, "BEARISH. Exchange hack.", got)
}

func TestClassify_SkipsThoughtParts(t *testing.T) {
	content := &genai.Content{Role: "model", Parts: []*genai.Part{
		{Text: "Let me weigh the headlines first.", Thought: true},
		{Text: "NEUTRAL. Mixed signals."},
	}}
	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
	c := newTestClassifier(&fakeGenerator{resp: resp})

	got, err := c.Classify(context.Background(), "btc", []string{"h"})
	require.NoError(t, err)
	assert.Equal(t, "NEUTRAL. Mixed signals.", got)
}

func TestClassify_NotConfiguredMessage(t *testing.T) {
	c := &Classifier{model: "gemini-2.0-flash", logger: zap.NewNop()}

	_, err := c.Classify(context.Background(), "btc", []string{"h"})
	require.Error(t, err)
	assert.Equal(t, "ai: GEMINI_API_KEY not configured", err.Error())
}

func TestClassify_APIError(t *testing.T) {
	c := newTestClassifier(&fakeGenerator{err: errors.New("deadline exceeded")})

	_, err := c.Classify(context.Background(), "btc", []string{"h"})
	require.Error(t, err)
	assert.Equal(t, model.KindNetwork, kindOf(t, err))
	assert.Contains(t, err.Error(), "deadline exceeded")
}

func TestClassify_EmptyResponse(t *testing.T) {
	cases := map[string]*genai.GenerateContentResponse{
		"nil":           nil,
		"no candidates": {},
		"nil content":   {Candidates: []*genai.Candidate{{}}},
		"blank text":    textResponse("   "),
	}

	for name, resp := range cases {
		t.Run(name, func(t *testing.T) {
			c := newTestClassifier(&fakeGenerator{resp: resp})
			_, err := c.Classify(context.Background(), "btc", []string{"h"})
			assert.Equal(t, model.KindMalformed, kindOf(t, err))
		})
	}
}

func TestClassify_NotConfigured(t *testing.T) {
	c, err := NewClassifier(context.Background(), "", "gemini-2.0-flash", zap.NewNop())
	require.Error(t, err)
	require.NotNil(t, c)

	_, err = c.Classify(context.Background(), "btc", []string{"h"})
	assert.Equal(t, model.KindNotConfigured, kindOf(t, err))
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("bitcoin", []string{"first", "second"})

	assert.True(t, strings.HasPrefix(prompt, "Analyze the overall market sentiment of these recent news headlines for bitcoin."))
	assert.Contains(t, prompt, "BULLISH, BEARISH, or NEUTRAL")
	assert.Contains(t, prompt, "1-sentence")
	assert.Less(t, strings.Index(prompt, "- first"), strings.Index(prompt, "- second"))
}
