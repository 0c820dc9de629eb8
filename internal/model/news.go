package model

// ArticleSource источник статьи в ответе NewsAPI
type ArticleSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Article одна статья из /v2/everything
type Article struct {
	Source      ArticleSource `json:"source"`
	Author      string        `json:"author"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	PublishedAt string        `json:"publishedAt"`
}

// NewsResponse ответ NewsAPI, в том числе ошибочный (status = "error")
type NewsResponse struct {
	Status       string    `json:"status"`
	Code         string    `json:"code,omitempty"`
	Message      string    `json:"message,omitempty"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

// Titles возвращает непустые заголовки в исходном порядке, не больше limit
func (r *NewsResponse) Titles(limit int) []string {
	titles := make([]string, 0, limit)
	for _, article := range r.Articles {
		if len(titles) == limit {
			break
		}
		if article.Title == "" {
			continue
		}
		titles = append(titles, article.Title)
	}
	return titles
}
