package errors

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	load := NewLoad(-1, "controller unreachable")
	wrapped := fmt.Errorf("list nodes: %w", load)
	require.True(t, IsLoad(wrapped))
	require.False(t, IsNotFound(wrapped))

	nf := fmt.Errorf("get node: %w", NewNotFound(1, "node cn001 not found"))
	require.True(t, IsNotFound(nf))
	require.True(t, IsLoad(nf), "not-found is a load error shape")

	require.True(t, IsValidation(fmt.Errorf("x: %w", NewValidation("bad attr %q", "foo"))))
	require.True(t, IsUpdate(fmt.Errorf("x: %w", NewUpdate(1, "invalid state"))))
	require.False(t, IsLoad(fmt.Errorf("plain")))
}

func TestValidationMessageFormatting(t *testing.T) {
	require.Equal(t, "update fields must be provided", NewValidation("update fields must be provided").Error())
	require.Equal(t, `unknown attribute "foo"`, NewValidation("unknown attribute %q", "foo").Error())
}

func TestServeErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation maps to bad request", NewValidation("update fields must be provided"), http.StatusBadRequest},
		{"not found maps to not found", NewNotFound(1, "node cn001 not found"), http.StatusNotFound},
		{"load failure maps to bad gateway", NewLoad(-1, "controller unreachable"), http.StatusBadGateway},
		{"update rejection maps to bad gateway", NewUpdate(1, "invalid state"), http.StatusBadGateway},
		{"plain error maps to internal", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			ServeError(c, tt.err)
			require.Equal(t, tt.want, w.Code)
			require.Contains(t, w.Body.String(), `"detail"`)
		})
	}
}
