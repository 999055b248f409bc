package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	pkgerrors "github.com/briefforge/briefforge-backend/internal/pkg/errors"
	"github.com/briefforge/briefforge-backend/internal/pkg/logger"
	"github.com/briefforge/briefforge-backend/internal/types"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func testStore(t *testing.T) Store {
	t.Helper()
	s, err := NewFileStore(t.TempDir(), testLogger())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func sampleBrief(project string) types.MarketingBrief {
	return types.MarketingBrief{
		DocumentMeta: types.DocumentMeta{
			ProjectName: project,
			BrandName:   "Acme",
			PreparedFor: "Acme marketing team",
			Version:     "1.0",
			Summary:     "Campaign brief for " + project,
		},
		ExecutiveSummary: types.ExecutiveSummary{
			Overview:        "Short overview",
			Objective:       "Grow signups",
			SuccessCriteria: []string{"signups", "CAC"},
		},
		CreativeStrategy: types.CreativeStrategy{
			BigIdea: "Effortless setup",
			Territories: []types.CreativeTerritory{
				{Name: "One Hour Club", Description: "Speed", ExampleHook: "Live in an hour", VisualDirection: "Clean UI shots", TargetEmotion: "Relief"},
			},
		},
	}
}

func sampleMeta(title string) types.NewBriefMeta {
	return types.NewBriefMeta{
		Title:       title,
		Description: "generated brief",
		Status:      types.StatusDraft,
		Author:      "mara",
		Tags:        []string{"launch", "q3"},
	}
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	brief := sampleBrief("Launch X")

	id, err := s.Create(ctx, brief, sampleMeta("Launch X brief"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == uuid.Nil {
		t.Fatal("create returned nil id")
	}

	saved, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if saved.Metadata.ID != id {
		t.Fatalf("metadata id %s != slot id %s", saved.Metadata.ID, id)
	}
	if !reflect.DeepEqual(saved.BriefData, brief) {
		t.Fatalf("document changed across round trip:\ngot  %+v\nwant %+v", saved.BriefData, brief)
	}
	if saved.Metadata.Title != "Launch X brief" || saved.Metadata.Author != "mara" {
		t.Fatalf("metadata fields lost: %+v", saved.Metadata)
	}
	if !saved.Metadata.CreatedAt.Equal(saved.Metadata.UpdatedAt) {
		t.Fatal("createdAt must equal updatedAt on create")
	}
	if saved.Metadata.CreatedAt.IsZero() {
		t.Fatal("createdAt not stamped")
	}
}

func TestCreateDefaultsStatusToDraft(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	meta := sampleMeta("untitled")
	meta.Status = ""
	id, err := s.Create(ctx, sampleBrief("p"), meta)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	saved, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if saved.Metadata.Status != types.StatusDraft {
		t.Fatalf("status = %q, want Draft", saved.Metadata.Status)
	}
}

func TestCreateRejectsUnknownStatus(t *testing.T) {
	s := testStore(t)
	meta := sampleMeta("bad")
	meta.Status = "Published"
	if _, err := s.Create(context.Background(), sampleBrief("p"), meta); !errors.Is(err, pkgerrors.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.Get(context.Background(), uuid.New())
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListMetadataNewestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	var ids []uuid.UUID
	for _, title := range []string{"first", "second", "third"} {
		id, err := s.Create(ctx, sampleBrief(title), sampleMeta(title))
		if err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
		ids = append(ids, id)
		time.Sleep(5 * time.Millisecond)
	}

	metas, err := s.ListMetadata(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(metas) != 3 {
		t.Fatalf("len = %d, want 3", len(metas))
	}
	for i := 1; i < len(metas); i++ {
		if metas[i].CreatedAt.After(metas[i-1].CreatedAt) {
			t.Fatalf("listing not in createdAt-descending order: %v", metas)
		}
	}
	if metas[0].ID != ids[2] {
		t.Fatalf("newest first: got %s, want %s", metas[0].ID, ids[2])
	}
}

func TestListMetadataSkipsCorruptSlot(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir, testLogger())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if _, err := s.Create(ctx, sampleBrief("good"), sampleMeta("good")); err != nil {
		t.Fatalf("create: %v", err)
	}
	bad := filepath.Join(dir, uuid.New().String()+".json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt slot: %v", err)
	}

	metas, err := s.ListMetadata(ctx)
	if err != nil {
		t.Fatalf("list must not fail on one bad slot: %v", err)
	}
	if len(metas) != 1 {
		t.Fatalf("len = %d, want 1 (corrupt slot skipped)", len(metas))
	}
}

func TestUpdateMetadataPatchesOnlyGivenFields(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, sampleBrief("Launch X"), sampleMeta("Launch X brief"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	before, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	status := types.StatusApproved
	ok, err := s.UpdateMetadata(ctx, id, types.MetadataPatch{Status: &status})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !ok {
		t.Fatal("update returned false for existing id")
	}

	after, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if after.Metadata.Status != types.StatusApproved {
		t.Fatalf("status = %q, want Approved", after.Metadata.Status)
	}
	if after.Metadata.Title != before.Metadata.Title ||
		after.Metadata.Description != before.Metadata.Description ||
		after.Metadata.Author != before.Metadata.Author {
		t.Fatal("update changed fields outside the patch")
	}
	if !after.Metadata.CreatedAt.Equal(before.Metadata.CreatedAt) {
		t.Fatal("createdAt changed on update")
	}
	if !after.Metadata.UpdatedAt.After(before.Metadata.UpdatedAt) {
		t.Fatal("updatedAt not bumped")
	}
	if !reflect.DeepEqual(after.BriefData, before.BriefData) {
		t.Fatal("metadata update touched the document")
	}
}

func TestUpdateMetadataMissingIDReturnsFalse(t *testing.T) {
	s := testStore(t)
	title := "nope"
	ok, err := s.UpdateMetadata(context.Background(), uuid.New(), types.MetadataPatch{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if ok {
		t.Fatal("update of missing id returned true")
	}
}

func TestReplaceBrief(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, sampleBrief("v1"), sampleMeta("brief"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	before, _ := s.Get(ctx, id)

	time.Sleep(5 * time.Millisecond)
	next := sampleBrief("v2")
	ok, err := s.ReplaceBrief(ctx, id, next)
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if !ok {
		t.Fatal("replace returned false for existing id")
	}

	after, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !reflect.DeepEqual(after.BriefData, next) {
		t.Fatal("document not replaced")
	}
	if after.Metadata.Title != before.Metadata.Title {
		t.Fatal("replace touched metadata fields")
	}
	if !after.Metadata.UpdatedAt.After(before.Metadata.UpdatedAt) {
		t.Fatal("updatedAt not bumped on document replace")
	}

	ok, err = s.ReplaceBrief(ctx, uuid.New(), next)
	if err != nil || ok {
		t.Fatalf("replace missing id: ok=%v err=%v, want false/nil", ok, err)
	}
}

func TestDeleteTwice(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	id, err := s.Create(ctx, sampleBrief("p"), sampleMeta("m"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := s.Delete(ctx, id)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !ok {
		t.Fatal("first delete returned false")
	}

	if _, err := s.Get(ctx, id); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("get after delete: err = %v, want ErrNotFound", err)
	}

	ok, err = s.Delete(ctx, id)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if ok {
		t.Fatal("second delete returned true")
	}
}
