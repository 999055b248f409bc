package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BriefStatus string

const (
	StatusDraft    BriefStatus = "Draft"
	StatusInReview BriefStatus = "In Review"
	StatusApproved BriefStatus = "Approved"
)

func (s BriefStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusInReview, StatusApproved:
		return true
	}
	return false
}

// BriefMetadata is the lightweight, independently-listable half of a saved
// brief. Created at save time and mutated on every update; never derived from
// the brief document itself.
type BriefMetadata struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      BriefStatus `json:"status"`
	Author      string      `json:"author"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Tags        []string    `json:"tags,omitempty"`
}

// NewBriefMeta carries the user-supplied metadata fields for a create; the
// store stamps id and timestamps.
type NewBriefMeta struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Status      BriefStatus `json:"status"`
	Author      string      `json:"author"`
	Tags        []string    `json:"tags,omitempty"`
}

func (m NewBriefMeta) Validate() error {
	if m.Status != "" && !m.Status.Valid() {
		return fmt.Errorf("invalid status %q", m.Status)
	}
	return nil
}

// SavedBrief is the persisted {metadata, document} pair. The two halves are
// serialized together so neither can exist without the other.
type SavedBrief struct {
	Metadata  BriefMetadata  `json:"metadata"`
	BriefData MarketingBrief `json:"briefData"`
}

// MetadataPatch is an explicit partial update: nil fields are left untouched.
// Unknown keys in a request body simply have nowhere to land.
type MetadataPatch struct {
	Title       *string      `json:"title,omitempty"`
	Description *string      `json:"description,omitempty"`
	Status      *BriefStatus `json:"status,omitempty"`
	Author      *string      `json:"author,omitempty"`
	Tags        *[]string    `json:"tags,omitempty"`
}

func (p MetadataPatch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("invalid status %q", *p.Status)
	}
	return nil
}

// Apply merges the patch into meta and returns the result. Pure: id and
// timestamps are never touched here; the store owns updatedAt.
func (p MetadataPatch) Apply(meta BriefMetadata) BriefMetadata {
	if p.Title != nil {
		meta.Title = *p.Title
	}
	if p.Description != nil {
		meta.Description = *p.Description
	}
	if p.Status != nil {
		meta.Status = *p.Status
	}
	if p.Author != nil {
		meta.Author = *p.Author
	}
	if p.Tags != nil {
		meta.Tags = *p.Tags
	}
	return meta
}
