// Package link manages the association between a local directory and a
// project, persisted under the directory's .vercel folder.
package link

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vercel/cli/internal/api"
	"github.com/vercel/cli/internal/flag"
	"github.com/vercel/cli/internal/prompt"
	"github.com/vercel/cli/internal/state"
	"github.com/vercel/cli/iostreams"
)

const (
	// Dir is the name of the directory the link file lives in.
	Dir = ".vercel"

	// FileName is the name of the link file within Dir.
	FileName = "project.json"
)

// ErrNotLinked is returned when the working directory carries no link file.
var ErrNotLinked = errors.New("directory not linked to a project")

// Link is the persisted association written by the linking flow.
type Link struct {
	ProjectID string `json:"projectId"`
	OrgID     string `json:"orgId"`
}

// Resolved carries the project and scope a link resolves to.
type Resolved struct {
	Project *api.Project
	Org     *api.Org
}

// Load reads the link file beneath dir. It returns ErrNotLinked when none
// exists.
func Load(dir string) (*Link, error) {
	buf, err := os.ReadFile(filepath.Join(dir, Dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotLinked
		}
		return nil, err
	}

	var l Link
	if err := json.Unmarshal(buf, &l); err != nil {
		return nil, fmt.Errorf("invalid link file: %w", err)
	}

	if l.ProjectID == "" || l.OrgID == "" {
		return nil, ErrNotLinked
	}

	return &l, nil
}

// Save writes the link file beneath dir, creating the .vercel folder as
// needed.
func Save(dir string, l *Link) error {
	folder := filepath.Join(dir, Dir)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return err
	}

	buf, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(folder, FileName), append(buf, '\n'), 0o644)
}

// Resolve loads the link beneath the working directory and fetches the
// project and scope it refers to.
func Resolve(ctx context.Context) (*Resolved, error) {
	l, err := Load(state.WorkingDirectory(ctx))
	if err != nil {
		return nil, err
	}

	org, err := orgFromID(ctx, l.OrgID)
	if err != nil {
		return nil, err
	}

	project, err := api.FromContext(ctx).GetProject(ctx, l.ProjectID, org.TeamID())
	if err != nil {
		return nil, err
	}

	return &Resolved{Project: project, Org: org}, nil
}

// EnsureLink resolves the working directory's link, establishing one
// interactively when absent. The yes flag suppresses the confirmation step of
// the linking flow.
func EnsureLink(ctx context.Context) (*Resolved, error) {
	resolved, err := Resolve(ctx)
	if !errors.Is(err, ErrNotLinked) {
		return resolved, err
	}

	return establish(ctx)
}

func establish(ctx context.Context) (*Resolved, error) {
	var (
		io  = iostreams.FromContext(ctx)
		wd  = state.WorkingDirectory(ctx)
		yes = flag.GetYes(ctx)
	)

	if !yes {
		switch confirmed, err := prompt.Confirmf(ctx, "Link %q to an existing project?", wd); {
		case err != nil:
			return nil, err
		case !confirmed:
			return nil, ErrNotLinked
		}
	}

	org, err := prompt.Scope(ctx)
	if err != nil {
		return nil, err
	}

	name := flag.GetProject(ctx)
	if name == "" {
		def := filepath.Base(wd)
		if yes {
			name = def
		} else if err := prompt.String(ctx, &name, "What's the name of your existing project?", def, true); err != nil {
			return nil, err
		}
	}

	project, err := api.FromContext(ctx).GetProject(ctx, name, org.TeamID())
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return nil, fmt.Errorf("project %s not found under %s", name, org.Slug)
		}
		return nil, err
	}

	if err := Save(wd, &Link{ProjectID: project.ID, OrgID: org.ID}); err != nil {
		return nil, fmt.Errorf("failed saving link file: %w", err)
	}

	fmt.Fprintf(io.Out, "Linked to %s/%s\n", org.Slug, project.Name)

	return &Resolved{Project: project, Org: org}, nil
}

func orgFromID(ctx context.Context, id string) (*api.Org, error) {
	client := api.FromContext(ctx)

	if strings.HasPrefix(id, "team_") {
		team, err := client.GetTeam(ctx, id)
		if err != nil {
			return nil, err
		}

		return &api.Org{ID: team.ID, Slug: team.Slug, Type: api.OrgTypeTeam}, nil
	}

	user, err := client.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	return &api.Org{ID: user.ID, Slug: user.Username, Type: api.OrgTypeUser}, nil
}
