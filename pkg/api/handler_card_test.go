package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestMoveCardHandlerValidation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.HTTPErrorHandler = errorEnvelopeHandler
	e.PATCH("/api/cards/:id/move", s.moveCardHandler)

	do := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPatch, "/api/cards/card-1/move", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing columnId", func(t *testing.T) {
		rec := do(`{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success": false, "error": "columnId is required"}`, rec.Body.String())
	})

	t.Run("unknown column", func(t *testing.T) {
		rec := do(`{"columnId": "limbo"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success": false, "error": "unknown column: limbo"}`, rec.Body.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := do(`{"columnId": `)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"success": false, "error": "invalid request body"}`, rec.Body.String())
	})
}

func TestWSHandlerWithoutManager(t *testing.T) {
	s := &Server{}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cards/ws", nil)
	rec := httptest.NewRecorder()

	err := s.wsHandler(e.NewContext(req, rec))
	he, ok := err.(*echo.HTTPError)
	if assert.True(t, ok) {
		assert.Equal(t, http.StatusServiceUnavailable, he.Code)
	}
}
