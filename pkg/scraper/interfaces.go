package scraper

import "leaguefetch/pkg/fetcher"

// ImageClient defines the interface for image host operations
type ImageClient interface {
	Fetch(url string, sink fetcher.Sink) (int64, error)
}
