package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

// Only request validation is covered here (returns before hitting any
// service). Full execute flows are exercised in server_test.go with a
// real database.
func TestExecuteHandlersValidation(t *testing.T) {
	s := &Server{}

	newCtx := func(body string) (*echo.Context, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/execute-plan", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("missing cardId", func(t *testing.T) {
		handlers := map[string]func(*echo.Context) error{
			"plan":      s.executePlanHandler,
			"implement": s.executeImplementHandler,
			"test":      s.executeTestHandler,
			"review":    s.executeReviewHandler,
		}
		for name, handler := range handlers {
			t.Run(name, func(t *testing.T) {
				c, _ := newCtx(`{}`)
				err := handler(c)
				he, ok := err.(*echo.HTTPError)
				if assert.True(t, ok, "expected echo.HTTPError") {
					assert.Equal(t, http.StatusBadRequest, he.Code)
					assert.Equal(t, "cardId is required", he.Message)
				}
			})
		}
	})

	t.Run("plan requires title", func(t *testing.T) {
		c, _ := newCtx(`{"cardId": "card-1"}`)
		err := s.executePlanHandler(c)
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Equal(t, "title is required", he.Message)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		c, _ := newCtx(`{"cardId": `)
		err := s.executePlanHandler(c)
		he, ok := err.(*echo.HTTPError)
		if assert.True(t, ok) {
			assert.Equal(t, http.StatusBadRequest, he.Code)
			assert.Equal(t, "invalid request body", he.Message)
		}
	})
}
