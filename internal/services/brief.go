package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/briefforge/briefforge-backend/internal/pkg/logger"
	"github.com/briefforge/briefforge-backend/internal/store"
	"github.com/briefforge/briefforge-backend/internal/types"
)

type BriefService interface {
	CreateBrief(ctx context.Context, brief types.MarketingBrief, meta types.NewBriefMeta) (*types.SavedBrief, error)
	GetBrief(ctx context.Context, id uuid.UUID) (*types.SavedBrief, error)
	ListBriefs(ctx context.Context) ([]types.BriefMetadata, error)
	UpdateBriefMetadata(ctx context.Context, id uuid.UUID, patch types.MetadataPatch) (bool, error)
	ReplaceBriefDocument(ctx context.Context, id uuid.UUID, brief types.MarketingBrief) (bool, error)
	DeleteBrief(ctx context.Context, id uuid.UUID) (bool, error)
}

type briefService struct {
	log   *logger.Logger
	store store.Store
}

func NewBriefService(baseLog *logger.Logger, st store.Store) BriefService {
	return &briefService{
		log:   baseLog.With("service", "BriefService"),
		store: st,
	}
}

func (bs *briefService) CreateBrief(ctx context.Context, brief types.MarketingBrief, meta types.NewBriefMeta) (*types.SavedBrief, error) {
	id, err := bs.store.Create(ctx, brief, meta)
	if err != nil {
		bs.log.Error("CreateBrief failed", "error", err)
		return nil, fmt.Errorf("create brief: %w", err)
	}
	saved, err := bs.store.Get(ctx, id)
	if err != nil {
		bs.log.Error("CreateBrief readback failed", "id", id, "error", err)
		return nil, fmt.Errorf("read created brief: %w", err)
	}
	return saved, nil
}

func (bs *briefService) GetBrief(ctx context.Context, id uuid.UUID) (*types.SavedBrief, error) {
	return bs.store.Get(ctx, id)
}

func (bs *briefService) ListBriefs(ctx context.Context) ([]types.BriefMetadata, error) {
	metas, err := bs.store.ListMetadata(ctx)
	if err != nil {
		bs.log.Error("ListBriefs failed", "error", err)
		return nil, fmt.Errorf("list briefs: %w", err)
	}
	return metas, nil
}

func (bs *briefService) UpdateBriefMetadata(ctx context.Context, id uuid.UUID, patch types.MetadataPatch) (bool, error) {
	return bs.store.UpdateMetadata(ctx, id, patch)
}

func (bs *briefService) ReplaceBriefDocument(ctx context.Context, id uuid.UUID, brief types.MarketingBrief) (bool, error) {
	return bs.store.ReplaceBrief(ctx, id, brief)
}

func (bs *briefService) DeleteBrief(ctx context.Context, id uuid.UUID) (bool, error) {
	return bs.store.Delete(ctx, id)
}
