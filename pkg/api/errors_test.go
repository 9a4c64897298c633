package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/cardsmith/pkg/models"
	"github.com/codeready-toolchain/cardsmith/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "validation error",
			err:      services.NewValidationError("title", "cannot be empty"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "validation error on field 'title': cannot be empty",
		},
		{
			name:     "invalid transition keeps its exact message",
			err:      services.NewInvalidTransitionError(models.ColumnBacklog, models.ColumnReview),
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid transition from 'backlog' to 'review'. Allowed: [plan, cancelled]",
		},
		{
			name:     "not found",
			err:      services.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantMsg:  "resource not found",
		},
		{
			name:     "wrapped not found",
			err:      errors.Join(errors.New("loading card"), services.ErrNotFound),
			wantCode: http.StatusNotFound,
			wantMsg:  "resource not found",
		},
		{
			name:     "terminal goal",
			err:      services.ErrGoalTerminal,
			wantCode: http.StatusConflict,
			wantMsg:  "goal is in a terminal state",
		},
		{
			name:     "already exists",
			err:      services.ErrAlreadyExists,
			wantCode: http.StatusConflict,
			wantMsg:  "resource already exists",
		},
		{
			name:     "unexpected error is masked",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := mapServiceError(tt.err)
			assert.Equal(t, tt.wantCode, he.Code)
			assert.Equal(t, tt.wantMsg, he.Message)
		})
	}
}
