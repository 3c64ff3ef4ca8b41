// Package prompt implements input-related functionality.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	surveyCore "github.com/AlecAivazis/survey/v2/core"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/mgutz/ansi"
	"github.com/samber/lo"

	"github.com/vercel/cli/internal/api"
	"github.com/vercel/cli/internal/config"
	"github.com/vercel/cli/internal/env"
	"github.com/vercel/cli/internal/flag"
	"github.com/vercel/cli/iostreams"
)

func String(ctx context.Context, dst *string, msg, def string, required bool) error {
	opt, err := newSurveyIO(ctx)
	if err != nil {
		return err
	}

	p := &survey.Input{
		Message: msg,
		Default: def,
	}

	opts := []survey.AskOpt{opt}
	if required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}

	return survey.AskOne(p, dst, opts...)
}

func Password(ctx context.Context, dst *string, msg string, required bool) error {
	opt, err := newSurveyIO(ctx)
	if err != nil {
		return err
	}

	p := &survey.Password{
		Message: msg,
	}

	opts := []survey.AskOpt{opt}
	if required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}

	return survey.AskOne(p, dst, opts...)
}

func Select(ctx context.Context, index *int, msg, def string, options ...string) error {
	opt, err := newSurveyIO(ctx)
	if err != nil {
		return err
	}

	p := &survey.Select{
		Message:  msg,
		Options:  options,
		PageSize: 15,
	}

	if def != "" {
		p.Default = def
	}

	return survey.AskOne(p, index, opt)
}

func Confirm(ctx context.Context, message string) (confirm bool, err error) {
	var opt survey.AskOpt
	if opt, err = newSurveyIO(ctx); err != nil {
		return
	}

	prompt := &survey.Confirm{
		Message: message,
	}

	err = survey.AskOne(prompt, &confirm, opt)

	return
}

func Confirmf(ctx context.Context, format string, a ...interface{}) (bool, error) {
	return Confirm(ctx, fmt.Sprintf(format, a...))
}

var errNonInteractive = errors.New("prompt: non interactive")

func IsNonInteractive(err error) bool {
	return errors.Is(err, errNonInteractive)
}

type NonInteractiveError string

func (e NonInteractiveError) Error() string { return string(e) }

func (NonInteractiveError) Unwrap() error { return errNonInteractive }

// IsAborted reports whether err denotes the user interrupting a prompt.
func IsAborted(err error) bool {
	return errors.Is(err, terminal.InterruptErr)
}

func newSurveyIO(ctx context.Context) (survey.AskOpt, error) {
	io := iostreams.FromContext(ctx)
	if env.IsCI() || !io.IsInteractive() {
		return nil, errNonInteractive
	}

	in, ok := io.In.(terminal.FileReader)
	if !ok {
		return nil, errNonInteractive
	}

	out, ok := io.Out.(terminal.FileWriter)
	if !ok {
		return nil, errNonInteractive
	}

	surveyCore.TemplateFuncsWithColor["color"] = func(style string) string {
		switch style {
		case "white":
			return ansi.ColorCode("default")
		default:
			return ansi.ColorCode(style)
		}
	}

	return survey.WithStdio(in, out, io.ErrOut), nil
}

var errScopeSlugRequired = NonInteractiveError("scope slug must be specified when not running interactively")

// Scope returns the team or personal account the user has selected via flag
// or config, prompting for one when running interactively without either.
func Scope(ctx context.Context) (*api.Org, error) {
	client := api.FromContext(ctx)

	user, err := client.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	teams, err := client.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	slug := flag.GetScope(ctx)
	if slug == "" {
		slug = config.FromContext(ctx).Team
	}

	switch {
	case slug == "" && len(teams) == 0:
		return personalOrg(user), nil
	case slug == user.Username:
		return personalOrg(user), nil
	case slug != "":
		for _, team := range teams {
			if slug == team.Slug {
				return teamOrg(team), nil
			}
		}

		return nil, fmt.Errorf("team %s not found", slug)
	default:
		switch org, err := SelectScope(ctx, user, teams); {
		case err == nil:
			return org, nil
		case IsNonInteractive(err):
			return nil, errScopeSlugRequired
		default:
			return nil, err
		}
	}
}

// SelectScope prompts for one of the given teams or the personal account.
func SelectScope(ctx context.Context, user *api.User, teams []api.Team) (*api.Org, error) {
	options := append(
		[]string{fmt.Sprintf("%s (personal)", user.Username)},
		lo.Map(teams, func(t api.Team, _ int) string {
			return fmt.Sprintf("%s (%s)", t.Name, t.Slug)
		})...,
	)

	var index int
	if err := Select(ctx, &index, "Select scope:", "", options...); err != nil {
		return nil, err
	}

	if index == 0 {
		return personalOrg(user), nil
	}

	return teamOrg(teams[index-1]), nil
}

func personalOrg(user *api.User) *api.Org {
	return &api.Org{
		ID:   user.ID,
		Slug: user.Username,
		Type: api.OrgTypeUser,
	}
}

func teamOrg(team api.Team) *api.Org {
	return &api.Org{
		ID:   team.ID,
		Slug: team.Slug,
		Type: api.OrgTypeTeam,
	}
}
