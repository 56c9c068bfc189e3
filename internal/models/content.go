package models

// StaticContent — переопределение статической страницы (privacy, terms, …).
// При отсутствии записи сервис отдаёт встроенный текст по умолчанию.
type StaticContent struct {
	ID      string `json:"id,omitempty"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// swagger:model StaticContentRequest
type StaticContentRequest struct {
	Title   string `json:"title" example:"Privacy Policy"`
	Content string `json:"content"`
}
