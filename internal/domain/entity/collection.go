package entity

import "time"

// CollectionItem is a movie saved into a user's collection.
// MovieID is the catalog identifier (TMDB id as a string).
type CollectionItem struct {
	ID        string
	UserID    string
	MovieID   string
	Title     string
	PosterURL string
	AddedAt   time.Time
}
