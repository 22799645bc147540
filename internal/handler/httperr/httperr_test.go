//go:build unit

package httperr_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vidly/internal/handler/httperr"
	"vidly/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "unauthorized", err: errs.NewMarked("no token", errs.ErrUnauthorized), want: http.StatusUnauthorized},
		{name: "forbidden", err: errs.NewMarked("admins only", errs.ErrForbidden), want: http.StatusForbidden},
		{name: "invalid input", err: errs.NewMarked("bad name", errs.ErrInvalidInput), want: http.StatusBadRequest},
		{name: "not found", err: errs.NewMarked("no rental", errs.ErrNotFound), want: http.StatusNotFound},
		{name: "already processed", err: errs.NewMarked("closed", errs.ErrAlreadyProcessed), want: http.StatusBadRequest},
		{name: "wrapped category", err: errs.Wrap(errs.NewMarked("no rental", errs.ErrNotFound), "return"), want: http.StatusNotFound},
		{name: "unclassified", err: errors.New("connection reset"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}

func TestAbort_HidesInternalMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	httperr.Abort(c, errors.New("pq: password authentication failed"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body httperr.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Something failed.", body.Error.Message)
	assert.Len(t, c.Errors, 1)
}

func TestAbortBinding_ListsFieldErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	httperr.RegisterJSONFieldNames()
	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var req struct {
			Name string `json:"name" binding:"required,min=5"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortBinding(c, err)
		}
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", jsonBody(`{"name":"abc"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Detail []httperr.FieldError `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, `"name" must be at least 5`, body.Error.Message)
	assert.Equal(t, []httperr.FieldError{{Field: "name", Rule: "min", Param: "5"}}, body.Detail)
}

func jsonBody(s string) *strings.Reader {
	return strings.NewReader(s)
}
