package store

import (
	"context"
	"fmt"

	"github.com/peterbourgon/diskv/v3"
)

// SnapshotKey is the single key (and file name) the whole document lives
// under inside the base path.
const SnapshotKey = "dados.json"

// Persistence is the snapshot load/save contract. Save rewrites the entire
// document; there are no partial writes.
type Persistence interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(s *Snapshot) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config. A
// nil config falls back to LoadConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Load reads and decodes the snapshot. An absent or unreadable document
// yields the default snapshot, mirroring first-run behavior.
func (p *persistence) Load(_ context.Context) (*Snapshot, error) {
	data, err := p.d.Read(SnapshotKey)
	if err != nil {
		return DefaultSnapshot(), nil
	}
	return Decode(data), nil
}

// Save rewrites the whole document.
func (p *persistence) Save(s *Snapshot) error {
	data, err := s.Encode()
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}
	if err := p.d.Write(SnapshotKey, data); err != nil {
		return fmt.Errorf("store: write snapshot: %w", err)
	}
	return nil
}
