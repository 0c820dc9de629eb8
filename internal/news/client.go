package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ivanoskov/sentiment_bot/internal/model"
	"go.uber.org/zap"
)

const (
	everythingPath = "/v2/everything"

	// PageSize сколько последних статей запрашиваем
	PageSize = 5
)

// Client ходит в NewsAPI за свежими заголовками
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewClient(apiKey, baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  logger.With(zap.String("component", "news")),
	}
}

// Headlines возвращает до PageSize заголовков по теме, от новых к старым.
// Пустой результат ошибкой не считается.
func (c *Client) Headlines(ctx context.Context, subject string) ([]string, error) {
	if c.apiKey == "" {
		return nil, &model.LookupError{Kind: model.KindNotConfigured, Op: "news", Message: "NEWS_API_KEY not configured"}
	}

	searchURL, err := c.buildSearchURL(subject)
	if err != nil {
		return nil, &model.LookupError{Kind: model.KindNotConfigured, Op: "news", Message: "invalid NEWS_API_BASE_URL", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, &model.LookupError{Kind: model.KindNetwork, Op: "news", Message: "create request", Err: withoutURL(err)}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &model.LookupError{Kind: model.KindNetwork, Op: "news", Message: "request failed", Err: withoutURL(err)}
	}
	defer resp.Body.Close()

	var newsResp model.NewsResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&newsResp)

	if resp.StatusCode != http.StatusOK {
		msg := newsResp.Message
		if decodeErr != nil || msg == "" {
			msg = "Unknown error"
		}
		return nil, &model.LookupError{
			Kind:    model.KindUpstream,
			Op:      "news",
			Message: fmt.Sprintf("status %d: %s", resp.StatusCode, msg),
		}
	}
	if decodeErr != nil {
		return nil, &model.LookupError{Kind: model.KindMalformed, Op: "news", Message: "decode response", Err: decodeErr}
	}
	if newsResp.Status == "error" {
		return nil, &model.LookupError{Kind: model.KindUpstream, Op: "news", Message: newsResp.Message}
	}

	titles := newsResp.Titles(PageSize)
	c.logger.Debug("news fetched",
		zap.String("subject", subject),
		zap.Int("articles", len(newsResp.Articles)),
		zap.Int("headlines", len(titles)))

	return titles, nil
}

func (c *Client) buildSearchURL(subject string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	if base.Scheme == "" || base.Host == "" {
		return "", errors.New("base url must be absolute")
	}

	base = base.JoinPath(everythingPath)
	params := url.Values{}
	params.Set("q", subject)
	params.Set("searchIn", "title")
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(PageSize))
	params.Set("apiKey", c.apiKey)
	base.RawQuery = params.Encode()
	return base.String(), nil
}

// withoutURL убирает адрес запроса из *url.Error: в query лежит apiKey,
// а текст ошибки уходит в чат и в лог
func withoutURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s %s: %w", urlErr.Op, everythingPath, urlErr.Err)
	}
	return err
}
