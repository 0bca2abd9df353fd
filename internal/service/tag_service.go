package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"conduit/internal/cache"
	"conduit/internal/repository"
)

const (
	tagsCacheKey = "tags"
	tagsCacheTTL = 5 * time.Minute
)

// TagService lists tag names.
type TagService interface {
	List(ctx context.Context) ([]string, error)
}

type tagService struct {
	tags  repository.TagRepository
	cache *cache.Client
}

// NewTagService creates a new tag service.
func NewTagService(tags repository.TagRepository, cache *cache.Client) TagService {
	return &tagService{
		tags:  tags,
		cache: cache,
	}
}

// List returns every stored tag name, read through the cache.
func (s *tagService) List(ctx context.Context) ([]string, error) {
	if data, _ := s.cache.Get(ctx, tagsCacheKey); data != nil {
		var cached []string
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}

	if payload, err := json.Marshal(names); err == nil {
		_ = s.cache.Set(ctx, tagsCacheKey, payload, tagsCacheTTL)
	}
	return names, nil
}
