// Package prefs holds the small flat collections persisted alongside the
// main stores: the custom category list, the bucket (wish) list and the
// third-party search credentials. They ride a plain key/value facility and
// have no invariants beyond "last write wins".
package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

const (
	keyCategories = "spacelog_categories"
	keyBucketList = "spacelog_bucketlist"
	keySettings   = "spacelog_config"
)

// KV is the flat-entry storage slice this package needs. Get returns
// (nil, nil) for a missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// BucketItem is one wish-list entry.
type BucketItem struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

// Settings carries the search API credentials. The core only stores them;
// the search integration itself lives outside this layer.
type Settings struct {
	APIKey string `json:"apiKey,omitempty"`
	CX     string `json:"cx,omitempty"`
}

type Service struct {
	kv  KV
	log *slog.Logger
}

func NewService(kv KV, log *slog.Logger) *Service {
	return &Service{
		kv:  kv,
		log: log.With("component", "prefs"),
	}
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	var cats []string
	if err := s.load(ctx, keyCategories, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}

func (s *Service) SaveCategories(ctx context.Context, cats []string) error {
	return s.store(ctx, keyCategories, cats)
}

func (s *Service) AddCategory(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("category name is required")
	}

	cats, err := s.Categories(ctx)
	if err != nil {
		return err
	}
	for _, c := range cats {
		if c == name {
			return nil
		}
	}
	return s.SaveCategories(ctx, append(cats, name))
}

func (s *Service) BucketList(ctx context.Context) ([]BucketItem, error) {
	var items []BucketItem
	if err := s.load(ctx, keyBucketList, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Service) SaveBucketList(ctx context.Context, items []BucketItem) error {
	return s.store(ctx, keyBucketList, items)
}

func (s *Service) AddBucketItem(ctx context.Context, text string) (*BucketItem, error) {
	if text == "" {
		return nil, fmt.Errorf("bucket item text is required")
	}

	items, err := s.BucketList(ctx)
	if err != nil {
		return nil, err
	}

	item := BucketItem{
		ID:        time.Now().UnixMilli(),
		Text:      text,
		CreatedAt: time.Now(),
	}
	if err := s.SaveBucketList(ctx, append(items, item)); err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Service) ToggleBucketItem(ctx context.Context, id int64) error {
	items, err := s.BucketList(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			items[i].Done = !items[i].Done
			return s.SaveBucketList(ctx, items)
		}
	}
	return fmt.Errorf("bucket item %d not found", id)
}

func (s *Service) Settings(ctx context.Context) (Settings, error) {
	var cfg Settings
	if err := s.load(ctx, keySettings, &cfg); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

func (s *Service) SaveSettings(ctx context.Context, cfg Settings) error {
	return s.store(ctx, keySettings, cfg)
}

func (s *Service) load(ctx context.Context, key string, out any) error {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", key, err)
	}
	return nil
}

func (s *Service) store(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Put(ctx, key, data); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
