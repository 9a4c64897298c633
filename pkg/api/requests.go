package api

// ExecuteStageRequest is the body of the POST /api/execute-* endpoints.
// Title and Description are only honored by execute-plan; SpecPath
// overrides the card's stored spec for the later stages.
type ExecuteStageRequest struct {
	CardID      string `json:"cardId"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	SpecPath    string `json:"specPath,omitempty"`
	Model       string `json:"model,omitempty"`
}

// MoveCardRequest is the body of PATCH /api/cards/:id/move.
type MoveCardRequest struct {
	ColumnID string `json:"columnId"`
}

// CreateWorkspaceRequest is the body of POST /api/cards/:id/workspace.
type CreateWorkspaceRequest struct {
	BaseBranch string `json:"baseBranch,omitempty"`
}
