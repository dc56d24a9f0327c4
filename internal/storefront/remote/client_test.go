package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-app/internal/domain/site"
)

func TestClient_ErrorResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"error":"category conflict: name already exists"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client(), nil)
	_, err := c.ListCategories(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "category conflict: name already exists", apiErr.Message)
	assert.Equal(t, http.StatusConflict, StatusOf(err))
}

func TestClient_ErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client(), nil).GetSiteConfig(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}

func TestClient_LoginStoresToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ops", body["username"])
			_, _ = io.WriteString(w, `{"token":"tok-1","user":{"id":3,"username":"ops","role":"staff","permissions":["manage_orders"],"capabilities":["manage_orders"]}}`)
		case "/me":
			gotAuth = r.Header.Get("Authorization")
			_, _ = io.WriteString(w, `{"id":3,"username":"ops","role":"staff","capabilities":["manage_orders"]}`)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", srv.Client(), nil)
	res, err := c.Login(context.Background(), "ops", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", c.Token())
	assert.Equal(t, uint(3), res.User.ID)
	assert.Equal(t, []string{"manage_orders"}, res.User.Capabilities)

	_, err = c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)

	c.SetToken("")
	assert.Empty(t, c.Token())
}

func TestClient_GetSiteConfigNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"siteName":"Shop","homeLayout":[]}`)
	}))
	defer srv.Close()

	cfg, err := NewClient(srv.URL, srv.Client(), nil).GetSiteConfig(context.Background())
	require.NoError(t, err)
	assert.Len(t, cfg.HomeLayout, 5)
	assert.Equal(t, site.DefaultThemeColors(), cfg.ThemeColors)
}

func TestClient_PatchSendsOnlySetKeys(t *testing.T) {
	var got map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = io.WriteString(w, `{"logoUrl":"/a.png"}`)
	}))
	defer srv.Close()

	logo := "/a.png"
	cfg, err := NewClient(srv.URL, srv.Client(), nil).PatchSiteConfig(context.Background(), site.Update{LogoURL: &logo})
	require.NoError(t, err)
	assert.Equal(t, "/a.png", cfg.LogoURL)
	assert.Len(t, got, 1)
	assert.Contains(t, got, "logoUrl")
}

func TestClient_SiteConfigRequiresDocument(t *testing.T) {
	for _, body := range []string{"", "null", "  \n"} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		}))
		c := NewClient(srv.URL, srv.Client(), nil)

		cfg, err := c.GetSiteConfig(context.Background())
		assert.ErrorIs(t, err, ErrEmptyDocument, "body %q", body)
		assert.Nil(t, cfg)

		_, err = c.ReplaceSiteConfig(context.Background(), site.DefaultConfig())
		assert.ErrorIs(t, err, ErrEmptyDocument, "body %q", body)

		logo := "/l.png"
		_, err = c.PatchSiteConfig(context.Background(), site.Update{LogoURL: &logo})
		assert.ErrorIs(t, err, ErrEmptyDocument, "body %q", body)
		srv.Close()
	}
}
