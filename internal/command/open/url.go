package open

import (
	"context"
	"fmt"
	"strings"

	"github.com/vercel/cli/internal/api"
	"github.com/vercel/cli/internal/config"
	"github.com/vercel/cli/internal/link"
	"github.com/vercel/cli/internal/logger"
)

type choice struct {
	label string
	url   string
}

// buildChoices assembles the static four-item menu. The dashboard entry never
// fails; the three deployment-derived entries fall back to the notFound
// sentinel when resolution comes up empty.
func buildChoices(ctx context.Context, resolved *link.Resolved) []choice {
	var (
		base    = config.FromContext(ctx).DashboardBaseURL
		org     = resolved.Org
		project = resolved.Project
	)

	return []choice{
		{label: "Dashboard", url: dashboardURL(base, org.Slug, project.Name)},
		{label: "Inspector", url: orNotFound(latestInspectorURL(ctx, base, org, project.Name))},
		{label: "Latest Preview", url: orNotFound(latestPreviewURL(ctx, org, project.Name))},
		{label: "Latest Production", url: orNotFound(latestProductionURL(ctx, org, project.Name))},
	}
}

func dashboardURL(base, orgSlug, project string) string {
	return fmt.Sprintf("%s/%s/%s", base, orgSlug, project)
}

func inspectorURL(base, orgSlug, project, deploymentID string) string {
	return fmt.Sprintf("%s/%s/%s/%s", base, orgSlug, project, strings.TrimPrefix(deploymentID, "dpl_"))
}

// latestInspectorURL looks up the latest deployment's id and composes its
// inspector page URL, or returns "" when the project has no deployments.
func latestInspectorURL(ctx context.Context, base string, org *api.Org, project string) string {
	deployment := latestDeployment(ctx, org, project)
	if deployment == nil {
		return ""
	}

	return inspectorURL(base, org.Slug, project, deployment.ID)
}

// latestPreviewURL resolves the host of the latest deployment, or "" when
// the project has no deployments.
func latestPreviewURL(ctx context.Context, org *api.Org, project string) string {
	deployment := latestDeployment(ctx, org, project)
	if deployment == nil || deployment.URL == "" {
		return ""
	}

	return "https://" + deployment.URL
}

// latestProductionURL resolves the host of the deployment serving the
// production target, or "" when none is.
func latestProductionURL(ctx context.Context, org *api.Org, project string) string {
	p, err := api.FromContext(ctx).GetProject(ctx, project, org.TeamID())
	if err != nil {
		logger.FromContext(ctx).Warnf("failed resolving production deployment: %v", err)
		return ""
	}

	production := p.Targets.Production()
	if production == nil || production.URL == "" {
		return ""
	}

	return "https://" + production.URL
}

// latestDeployment refetches the project and returns its latest deployment.
// Fetch errors are downgraded to "no deployment found".
func latestDeployment(ctx context.Context, org *api.Org, project string) *api.Deployment {
	p, err := api.FromContext(ctx).GetProject(ctx, project, org.TeamID())
	if err != nil {
		logger.FromContext(ctx).Warnf("failed resolving latest deployment: %v", err)
		return nil
	}

	if len(p.LatestDeployments) == 0 {
		return nil
	}

	return &p.LatestDeployments[0]
}

func orNotFound(url string) string {
	if url == "" {
		return notFound
	}
	return url
}
