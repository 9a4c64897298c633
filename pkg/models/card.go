package models

import (
	"time"

	"github.com/codeready-toolchain/cardsmith/ent"
)

// DefaultModelProfile selects the model used for any stage without an
// explicit override.
const DefaultModelProfile = "opus-4.5"

// CreateCardRequest contains fields for creating a card during
// decomposition or fix-card spawning.
type CreateCardRequest struct {
	Title          string
	Description    string
	GoalID         string
	Dependencies   []string
	ModelPlan      string
	ModelImplement string
	ModelTest      string
	ModelReview    string
}

// DiffStats summarises the implement stage's change footprint.
type DiffStats struct {
	FilesChanged int `json:"filesChanged"`
	Insertions   int `json:"insertions"`
	Deletions    int `json:"deletions"`
}

// ToMap flattens diff stats for JSON-column storage.
func (d DiffStats) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"files_changed": d.FilesChanged,
		"insertions":    d.Insertions,
		"deletions":     d.Deletions,
	}
}

// DiffStatsFromMap restores diff stats from the JSON column; nil-safe.
func DiffStatsFromMap(m map[string]interface{}) *DiffStats {
	if m == nil {
		return nil
	}
	asInt := func(k string) int {
		switch v := m[k].(type) {
		case int:
			return v
		case float64:
			return int(v)
		}
		return 0
	}
	return &DiffStats{
		FilesChanged: asInt("files_changed"),
		Insertions:   asInt("insertions"),
		Deletions:    asInt("deletions"),
	}
}

// CardResponse is the camelCase wire shape of a card.
type CardResponse struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Column           string     `json:"column"`
	SpecPath         *string    `json:"specPath,omitempty"`
	ModelPlan        string     `json:"modelPlan"`
	ModelImplement   string     `json:"modelImplement"`
	ModelTest        string     `json:"modelTest"`
	ModelReview      string     `json:"modelReview"`
	ParentCardID     *string    `json:"parentCardId,omitempty"`
	IsFixCard        bool       `json:"isFixCard"`
	TestErrorContext *string    `json:"testErrorContext,omitempty"`
	BranchName       *string    `json:"branchName,omitempty"`
	WorktreePath     *string    `json:"worktreePath,omitempty"`
	BaseBranch       *string    `json:"baseBranch,omitempty"`
	Dependencies     []string   `json:"dependencies"`
	DiffStats        *DiffStats `json:"diffStats,omitempty"`
	Archived         bool       `json:"archived"`
	GoalID           *string    `json:"goalId,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// NewCardResponse maps an ent card to its wire shape.
func NewCardResponse(c *ent.Card) *CardResponse {
	return &CardResponse{
		ID:               c.ID,
		Title:            c.Title,
		Description:      c.Description,
		Column:           c.Column,
		SpecPath:         c.SpecPath,
		ModelPlan:        c.ModelPlan,
		ModelImplement:   c.ModelImplement,
		ModelTest:        c.ModelTest,
		ModelReview:      c.ModelReview,
		ParentCardID:     c.ParentCardID,
		IsFixCard:        c.IsFixCard,
		TestErrorContext: c.TestErrorContext,
		BranchName:       c.BranchName,
		WorktreePath:     c.WorktreePath,
		BaseBranch:       c.BaseBranch,
		Dependencies:     emptyIfNil(c.Dependencies),
		DiffStats:        DiffStatsFromMap(c.DiffStats),
		Archived:         c.Archived,
		GoalID:           c.GoalID,
		CompletedAt:      c.CompletedAt,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

// NewCardResponses maps a card slice, preserving order.
func NewCardResponses(cards []*ent.Card) []*CardResponse {
	out := make([]*CardResponse, len(cards))
	for i, c := range cards {
		out[i] = NewCardResponse(c)
	}
	return out
}

// CardListResponse contains a board-ordered card listing.
type CardListResponse struct {
	Cards      []*CardResponse `json:"cards"`
	TotalCount int             `json:"totalCount"`
}

// ModelForStage picks the card's model profile for a stage.
func ModelForStage(c *ent.Card, s Stage) string {
	var m string
	switch s {
	case StagePlanning:
		m = c.ModelPlan
	case StageImplementing:
		m = c.ModelImplement
	case StageTesting:
		m = c.ModelTest
	case StageReviewing:
		m = c.ModelReview
	}
	if m == "" {
		return DefaultModelProfile
	}
	return m
}

// FixState classifies the newest fix-card relative to a failed test
// execution.
type FixState string

const (
	// FixStateNone means the failure has no fix-card yet.
	FixStateNone FixState = "none"
	// FixStateActive means a fix-card exists and is still in flight.
	FixStateActive FixState = "active"
	// FixStateResolved means a fix-card finished after the failure; the
	// parent may re-run its test stage.
	FixStateResolved FixState = "resolved"
)

// CardSnapshot is the pure-THINK view of one card.
type CardSnapshot struct {
	ID                  string
	Column              Column
	Dependencies        []string
	IsFixCard           bool
	ParentCardID        string
	HasRunningExecution bool
	TestFailed          bool
	FixState            FixState
}
