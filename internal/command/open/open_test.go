package open

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vercel/cli/internal/api"
	"github.com/vercel/cli/internal/config"
	"github.com/vercel/cli/internal/link"
	"github.com/vercel/cli/internal/logger"
	"github.com/vercel/cli/iostreams"
)

func TestDashboardURL(t *testing.T) {
	assert.Equal(t,
		"https://vercel.com/acme/my-site",
		dashboardURL("https://vercel.com", "acme", "my-site"),
	)
}

func TestInspectorURLStripsDeploymentPrefix(t *testing.T) {
	assert.Equal(t,
		"https://vercel.com/acme/my-site/abc123",
		inspectorURL("https://vercel.com", "acme", "my-site", "dpl_abc123"),
	)
}

func newTestContext(t *testing.T, handler http.Handler) context.Context {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.New()

	ctx := context.Background()
	ctx = logger.NewContext(ctx, logger.New(&bytes.Buffer{}, logger.Error))
	ctx = config.NewContext(ctx, cfg)
	ctx = api.NewContext(ctx, api.NewWithOptions(api.NewClientOpts{
		BaseURL: server.URL,
		Token:   "tok_test",
	}))

	return ctx
}

func testResolved() *link.Resolved {
	return &link.Resolved{
		Org:     &api.Org{ID: "team_1", Slug: "acme", Type: api.OrgTypeTeam},
		Project: &api.Project{ID: "prj_1", Name: "my-site"},
	}
}

func TestBuildChoicesWithoutDeployments(t *testing.T) {
	ctx := newTestContext(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"prj_1","name":"my-site","latestDeployments":[],"targets":{}}`))
	}))

	choices := buildChoices(ctx, testResolved())
	require.Len(t, choices, 4)

	assert.Equal(t, "Dashboard", choices[0].label)
	assert.Equal(t, "https://vercel.com/acme/my-site", choices[0].url)

	for _, c := range choices[1:] {
		assert.Equal(t, notFound, c.url, "choice %q", c.label)
	}
}

func TestBuildChoicesWithDeployments(t *testing.T) {
	ctx := newTestContext(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "team_1", r.URL.Query().Get("teamId"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "prj_1",
			"name": "my-site",
			"latestDeployments": [
				{"id": "dpl_abc123", "url": "my-site-9fz.vercel.app", "readyState": "READY"}
			],
			"targets": {
				"production": {"id": "dpl_prod", "url": "my-site.vercel.app"}
			}
		}`))
	}))

	choices := buildChoices(ctx, testResolved())
	require.Len(t, choices, 4)

	assert.Equal(t, "https://vercel.com/acme/my-site/abc123", choices[1].url)
	assert.Equal(t, "https://my-site-9fz.vercel.app", choices[2].url)
	assert.Equal(t, "https://my-site.vercel.app", choices[3].url)
}

func TestOpenChoiceSentinelFails(t *testing.T) {
	streams, _, out, _ := iostreams.Test()
	ctx := iostreams.NewContext(context.Background(), streams)

	err := openChoice(ctx, choice{label: "Inspector", url: notFound})

	assert.ErrorIs(t, err, errNoDeployments)
	assert.Empty(t, out.String(), "no launch on a sentinel entry")
}

func TestBuildChoicesDowngradesFetchErrors(t *testing.T) {
	ctx := newTestContext(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"internal","message":"boom"}}`, http.StatusInternalServerError)
	}))

	choices := buildChoices(ctx, testResolved())
	require.Len(t, choices, 4)

	// the dashboard needs no fetch and must survive API failures
	assert.Equal(t, "https://vercel.com/acme/my-site", choices[0].url)
	for _, c := range choices[1:] {
		assert.Equal(t, notFound, c.url, "choice %q", c.label)
	}
}
