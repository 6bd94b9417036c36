package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/cinespot/cinespot-api/internal/domain/entity"
	"github.com/cinespot/cinespot-api/internal/domain/repository"
)

// CollectionService manages a user's saved movies. Items live in the
// repository; Elasticsearch carries a best-effort search index on the
// side, so index failures never fail the write.
type CollectionService struct {
	Repo    repository.CollectionRepository
	ES      *elasticsearch.Client
	ESIndex string
	Logger  *logrus.Logger
}

func NewCollectionService(repo repository.CollectionRepository, es *elasticsearch.Client, esIndex string, logger *logrus.Logger) *CollectionService {
	return &CollectionService{Repo: repo, ES: es, ESIndex: esIndex, Logger: logger}
}

// Add saves a movie into the user's collection.
func (s *CollectionService) Add(ctx context.Context, userID, movieID, title, poster string) error {
	if movieID == "" || title == "" || poster == "" {
		return validationErr("Missing data")
	}
	item := &entity.CollectionItem{UserID: userID, MovieID: movieID, Title: title, PosterURL: poster}
	if err := s.Repo.Add(ctx, item); err != nil {
		if errors.Is(err, repository.ErrDuplicateMovie) {
			return conflictErr("Movie already added")
		}
		return infraErr("Server error", err)
	}
	s.indexItem(ctx, item)
	return nil
}

// List returns every movie in the user's collection, newest first.
// A user with no collection gets an empty list, not an error.
func (s *CollectionService) List(ctx context.Context, userID string) ([]entity.CollectionItem, error) {
	items, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, infraErr("Server error", err)
	}
	if items == nil {
		items = []entity.CollectionItem{}
	}
	return items, nil
}

// Remove deletes one movie from the user's collection.
func (s *CollectionService) Remove(ctx context.Context, userID, movieID string) error {
	err := s.Repo.Remove(ctx, userID, movieID)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundErr("Movie not found in collection")
	} else if err != nil {
		return infraErr("Server error", err)
	}
	s.deleteFromIndex(ctx, userID, movieID)
	return nil
}

// Search runs a title match over the user's indexed collection.
func (s *CollectionService) Search(ctx context.Context, userID, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"match": map[string]any{"title": q},
				},
				"filter": map[string]any{
					"term": map[string]any{"user_id": userID},
				},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, infraErr("Search unavailable", err)
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, infraErr("Search unavailable", err)
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func docID(userID, movieID string) string { return userID + ":" + movieID }

func (s *CollectionService) indexItem(ctx context.Context, item *entity.CollectionItem) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"user_id":  item.UserID,
		"movie_id": item.MovieID,
		"title":    item.Title,
		"poster":   item.PosterURL,
		"added_at": item.AddedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: docID(item.UserID, item.MovieID), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("movie_id", item.MovieID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).Warn("es index response error")
	}
}

func (s *CollectionService) deleteFromIndex(ctx context.Context, userID, movieID string) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESIndex, DocumentID: docID(userID, movieID)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}
