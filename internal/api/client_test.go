package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewWithOptions(NewClientOpts{
		BaseURL: server.URL,
		Token:   "tok_test",
	})
}

func TestGetProject(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v9/projects/my-site", r.URL.Path)
		assert.Equal(t, "team_1", r.URL.Query().Get("teamId"))
		assert.Equal(t, "Bearer tok_test", r.Header.Get("Authorization"))

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

	project, err := client.GetProject(context.Background(), "my-site", "team_1")
	require.NoError(t, err)

	assert.Equal(t, "prj_1", project.ID)
	require.Len(t, project.LatestDeployments, 1)
	assert.Equal(t, "dpl_abc123", project.LatestDeployments[0].ID)

	production := project.Targets.Production()
	require.NotNil(t, production)
	assert.Equal(t, "my-site.vercel.app", production.URL)
}

func TestGetProjectNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":"not_found","message":"Project not found"}}`, http.StatusNotFound)
	}))

	_, err := client.GetProject(context.Background(), "nope", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProjectServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":"forbidden","message":"Not authorized"}}`))
	}))

	_, err := client.GetProject(context.Background(), "my-site", "")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "forbidden", apiErr.Code)
	assert.Equal(t, "Not authorized", apiErr.Error())
}

func TestListDeployments(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v6/deployments", r.URL.Path)
		assert.Equal(t, "prj_1", r.URL.Query().Get("projectId"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"deployments": [
				{"uid": "dpl_1", "url": "a.vercel.app", "state": "READY", "target": "production", "created": 1700000000000},
				{"uid": "dpl_2", "url": "b.vercel.app", "state": "ERROR", "created": 1700000100000}
			]
		}`))
	}))

	deployments, err := client.ListDeployments(context.Background(), "prj_1", "", 5)
	require.NoError(t, err)
	require.Len(t, deployments, 2)

	assert.Equal(t, "dpl_1", deployments[0].ID)
	assert.Equal(t, "production", deployments[0].Target)
	assert.Equal(t, int64(1700000000000), deployments[0].CreatedAt)
	assert.Equal(t, 2023, deployments[0].Created().UTC().Year())
}

func TestGetCurrentUser(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/user", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"usr_1","username":"jane","email":"jane@example.com"}}`))
	}))

	user, err := client.GetCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jane", user.Username)
}

func TestOrgTeamID(t *testing.T) {
	team := &Org{ID: "team_1", Slug: "acme", Type: OrgTypeTeam}
	personal := &Org{ID: "usr_1", Slug: "jane", Type: OrgTypeUser}

	assert.Equal(t, "team_1", team.TeamID())
	assert.Empty(t, personal.TeamID())
}
