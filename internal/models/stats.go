package models

type DashboardStats struct {
	TotalArticles     int   `json:"total_articles"`
	PublishedArticles int   `json:"published_articles"`
	TotalSubscribers  int   `json:"total_subscribers"`
	TotalViews        int64 `json:"total_views"`
}
