package types

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestBriefStatusValid(t *testing.T) {
	for _, s := range []BriefStatus{StatusDraft, StatusInReview, StatusApproved} {
		if !s.Valid() {
			t.Fatalf("status %q should be valid", s)
		}
	}
	if BriefStatus("Published").Valid() {
		t.Fatal("unknown status accepted")
	}
}

func TestMetadataPatchApplyOnlySetFields(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	meta := BriefMetadata{
		ID:          uuid.New(),
		Title:       "Launch X brief",
		Description: "v1",
		Status:      StatusDraft,
		Author:      "mara",
		CreatedAt:   created,
		UpdatedAt:   created,
		Tags:        []string{"launch"},
	}

	status := StatusApproved
	got := MetadataPatch{Status: &status}.Apply(meta)

	if got.Status != StatusApproved {
		t.Fatalf("status = %q, want Approved", got.Status)
	}
	if got.Title != meta.Title || got.Description != meta.Description || got.Author != meta.Author {
		t.Fatalf("patch touched unset fields: %+v", got)
	}
	if got.ID != meta.ID || !got.CreatedAt.Equal(created) || !got.UpdatedAt.Equal(created) {
		t.Fatal("patch must not touch id or timestamps")
	}
	if len(got.Tags) != 1 || got.Tags[0] != "launch" {
		t.Fatalf("tags changed: %v", got.Tags)
	}
}

func TestMetadataPatchApplyClearsTags(t *testing.T) {
	meta := BriefMetadata{Tags: []string{"a", "b"}}
	empty := []string{}
	got := MetadataPatch{Tags: &empty}.Apply(meta)
	if len(got.Tags) != 0 {
		t.Fatalf("tags = %v, want empty", got.Tags)
	}
}

func TestMetadataPatchValidateStatus(t *testing.T) {
	bad := BriefStatus("Archived")
	if err := (MetadataPatch{Status: &bad}).Validate(); err == nil {
		t.Fatal("expected invalid status error")
	}
	good := StatusInReview
	if err := (MetadataPatch{Status: &good}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
