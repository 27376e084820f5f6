package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	newHandler := func(gotID *int64, gotOK *bool) http.Handler {
		return Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := GetUserID(r.Context())
			*gotID, *gotOK = id, ok
		}))
	}

	t.Run("valid header reaches context", func(t *testing.T) {
		var gotID int64
		var gotOK bool

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderUserID, "42")
		newHandler(&gotID, &gotOK).ServeHTTP(httptest.NewRecorder(), req)

		require.True(t, gotOK)
		assert.Equal(t, int64(42), gotID)
	})

	t.Run("missing header", func(t *testing.T) {
		var gotID int64
		var gotOK bool

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		newHandler(&gotID, &gotOK).ServeHTTP(httptest.NewRecorder(), req)

		assert.False(t, gotOK)
	})

	t.Run("garbage and non-positive values ignored", func(t *testing.T) {
		for _, v := range []string{"abc", "-5", "0", "12.5"} {
			var gotID int64
			var gotOK bool

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(HeaderUserID, v)
			newHandler(&gotID, &gotOK).ServeHTTP(httptest.NewRecorder(), req)

			assert.False(t, gotOK, "header %q", v)
		}
	})
}
