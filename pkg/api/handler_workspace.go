package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/codeready-toolchain/cardsmith/pkg/worktree"
)

// createWorkspaceHandler handles POST /api/cards/:id/workspace.
// Idempotent: a card that already has a workspace gets it back unchanged.
func (s *Server) createWorkspaceHandler(c *echo.Context) error {
	cardID := c.Param("id")
	if cardID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "card id is required")
	}

	var req CreateWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	card, err := s.cards.Get(ctx, cardID)
	if err != nil {
		return mapServiceError(err)
	}

	if card.WorktreePath != nil && *card.WorktreePath != "" {
		return c.JSON(http.StatusOK, &WorkspaceResponse{
			Success:      true,
			CardID:       cardID,
			BranchName:   deref(card.BranchName),
			WorktreePath: *card.WorktreePath,
			BaseBranch:   deref(card.BaseBranch),
		})
	}

	ws, err := s.worktrees.Create(ctx, cardID, req.BaseBranch)
	if err != nil {
		if errors.Is(err, worktree.ErrWorktreeLimit) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		var vcsErr *worktree.VCSError
		if errors.As(err, &vcsErr) {
			return echo.NewHTTPError(http.StatusInternalServerError, vcsErr.Error())
		}
		return mapServiceError(err)
	}

	if err := s.cards.SetWorkspace(ctx, cardID, ws.Branch, ws.Path, ws.Base); err != nil {
		// The worktree exists but the card doesn't know: clean up so a
		// retry starts from scratch.
		if cleanupErr := s.worktrees.Cleanup(ctx, ws.Path, ws.Branch, true); cleanupErr != nil {
			slog.Warn("Failed to clean up worktree after attach failure",
				"card_id", cardID, "path", ws.Path, "error", cleanupErr)
		}
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &WorkspaceResponse{
		Success:      true,
		CardID:       cardID,
		BranchName:   ws.Branch,
		WorktreePath: ws.Path,
		BaseBranch:   ws.Base,
	})
}

// listBranchesHandler handles GET /api/branches.
// Lists active agent worktrees with the cards attached to them.
func (s *Server) listBranchesHandler(c *echo.Context) error {
	ctx := c.Request().Context()

	active, err := s.worktrees.ListActive(ctx)
	if err != nil {
		return mapServiceError(err)
	}

	cards, err := s.cards.List(ctx)
	if err != nil {
		return mapServiceError(err)
	}
	byBranch := map[string]int{}
	for i, card := range cards {
		if card.BranchName != nil && *card.BranchName != "" {
			byBranch[*card.BranchName] = i
		}
	}

	resp := &BranchListResponse{Branches: []BranchInfo{}}
	for _, wt := range active {
		info := BranchInfo{Branch: wt.Branch, WorktreePath: wt.Path}
		if i, ok := byBranch[wt.Branch]; ok {
			card := cards[i]
			column := card.Column
			info.CardID = &card.ID
			info.CardTitle = &card.Title
			info.Column = &column
		}
		resp.Branches = append(resp.Branches, info)
	}
	resp.TotalCount = len(resp.Branches)
	return c.JSON(http.StatusOK, resp)
}

// cleanupOrphanWorktreesHandler handles POST /api/cleanup-orphan-worktrees.
// Removes worktrees whose card is gone or already past the workflow.
func (s *Server) cleanupOrphanWorktreesHandler(c *echo.Context) error {
	ctx := c.Request().Context()

	cards, err := s.cards.List(ctx)
	if err != nil {
		return mapServiceError(err)
	}
	activeIDs := make([]string, 0, len(cards))
	for _, card := range cards {
		if card.WorktreePath != nil && *card.WorktreePath != "" {
			activeIDs = append(activeIDs, card.ID)
		}
	}

	removed, err := s.worktrees.CleanupOrphans(ctx, activeIDs)
	if err != nil {
		return mapServiceError(err)
	}
	if removed == nil {
		removed = []string{}
	}
	return c.JSON(http.StatusOK, &CleanupWorktreesResponse{
		Success: true,
		Removed: removed,
		Count:   len(removed),
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
