package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/briefforge/briefforge-backend/internal/pkg/errors"
	"github.com/briefforge/briefforge-backend/internal/pkg/logger"
	"github.com/briefforge/briefforge-backend/internal/types"
)

// Store is CRUD over saved briefs keyed by id. Implementations perform no
// locking: concurrent writers against the same id race and the last complete
// write wins.
type Store interface {
	Create(ctx context.Context, brief types.MarketingBrief, meta types.NewBriefMeta) (uuid.UUID, error)
	Get(ctx context.Context, id uuid.UUID) (*types.SavedBrief, error)
	ListMetadata(ctx context.Context) ([]types.BriefMetadata, error)
	UpdateMetadata(ctx context.Context, id uuid.UUID, patch types.MetadataPatch) (bool, error)
	ReplaceBrief(ctx context.Context, id uuid.UUID, brief types.MarketingBrief) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// fileStore keeps one <id>.json slot per saved brief under dir. Records are
// always written whole via a temp file and rename, so a reader never observes
// a torn record.
type fileStore struct {
	dir string
	log *logger.Logger
}

func NewFileStore(dir string, log *logger.Logger) (Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("store dir required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &fileStore{
		dir: dir,
		log: log.With("service", "BriefStore"),
	}, nil
}

func (s *fileStore) slotPath(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String()+".json")
}

func (s *fileStore) writeRecord(rec *types.SavedBrief) error {
	raw, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, rec.Metadata.ID.String()+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp slot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write temp slot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp slot: %w", err)
	}
	if err := os.Rename(tmpName, s.slotPath(rec.Metadata.ID)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("publish slot: %w", err)
	}
	return nil
}

func (s *fileStore) readRecord(id uuid.UUID) (*types.SavedBrief, error) {
	raw, err := os.ReadFile(s.slotPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("brief %s: %w", id, pkgerrors.ErrNotFound)
		}
		return nil, fmt.Errorf("read slot %s: %w", id, err)
	}
	var rec types.SavedBrief
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode slot %s: %w", id, err)
	}
	return &rec, nil
}

func (s *fileStore) Create(ctx context.Context, brief types.MarketingBrief, meta types.NewBriefMeta) (uuid.UUID, error) {
	if err := meta.Validate(); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", pkgerrors.ErrInvalidArgument, err)
	}

	status := meta.Status
	if status == "" {
		status = types.StatusDraft
	}

	now := time.Now().UTC()
	rec := &types.SavedBrief{
		Metadata: types.BriefMetadata{
			ID:          uuid.New(),
			Title:       meta.Title,
			Description: meta.Description,
			Status:      status,
			Author:      meta.Author,
			CreatedAt:   now,
			UpdatedAt:   now,
			Tags:        meta.Tags,
		},
		BriefData: brief,
	}

	if err := s.writeRecord(rec); err != nil {
		s.log.Error("Create failed", "id", rec.Metadata.ID, "error", err)
		return uuid.Nil, err
	}
	s.log.Info("Brief created", "id", rec.Metadata.ID, "title", rec.Metadata.Title)
	return rec.Metadata.ID, nil
}

func (s *fileStore) Get(ctx context.Context, id uuid.UUID) (*types.SavedBrief, error) {
	return s.readRecord(id)
}

// ListMetadata reads the metadata half of every slot, newest first. A slot
// that fails to parse is logged and skipped; one bad record must not take the
// whole listing down.
func (s *fileStore) ListMetadata(ctx context.Context) ([]types.BriefMetadata, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read store dir: %w", err)
	}

	metas := make([]types.BriefMetadata, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			s.log.Warn("Skipping unreadable slot", "file", entry.Name(), "error", err)
			continue
		}
		var rec struct {
			Metadata types.BriefMetadata `json:"metadata"`
		}
		if err := json.Unmarshal(raw, &rec); err != nil {
			s.log.Warn("Skipping unparsable slot", "file", entry.Name(), "error", err)
			continue
		}
		metas = append(metas, rec.Metadata)
	}

	sort.SliceStable(metas, func(i, j int) bool {
		return metas[i].CreatedAt.After(metas[j].CreatedAt)
	})
	return metas, nil
}

func (s *fileStore) UpdateMetadata(ctx context.Context, id uuid.UUID, patch types.MetadataPatch) (bool, error) {
	if err := patch.Validate(); err != nil {
		return false, fmt.Errorf("%w: %s", pkgerrors.ErrInvalidArgument, err)
	}

	rec, err := s.readRecord(id)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}

	rec.Metadata = patch.Apply(rec.Metadata)
	rec.Metadata.ID = id
	rec.Metadata.UpdatedAt = time.Now().UTC()

	if err := s.writeRecord(rec); err != nil {
		s.log.Error("UpdateMetadata failed", "id", id, "error", err)
		return false, err
	}
	return true, nil
}

func (s *fileStore) ReplaceBrief(ctx context.Context, id uuid.UUID, brief types.MarketingBrief) (bool, error) {
	rec, err := s.readRecord(id)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, err
	}

	rec.BriefData = brief
	rec.Metadata.UpdatedAt = time.Now().UTC()

	if err := s.writeRecord(rec); err != nil {
		s.log.Error("ReplaceBrief failed", "id", id, "error", err)
		return false, err
	}
	return true, nil
}

func (s *fileStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	err := os.Remove(s.slotPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete slot %s: %w", id, err)
	}
	s.log.Info("Brief deleted", "id", id)
	return true, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, pkgerrors.ErrNotFound)
}
