package api

import "time"

// Project is a read-only record of a project and the deployments the
// dashboard derives its URLs from.
type Project struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	AccountID         string        `json:"accountId"`
	LatestDeployments []Deployment  `json:"latestDeployments"`
	Targets           TargetsByName `json:"targets"`
}

// TargetsByName maps an environment name ("production") to the deployment
// currently serving it.
type TargetsByName map[string]*Deployment

// Production returns the deployment serving the production target, or nil.
func (t TargetsByName) Production() *Deployment {
	return t["production"]
}

// Deployment is a single build output of a project. URL carries the host
// only, without a scheme.
type Deployment struct {
	ID        string  `json:"id"`
	URL       string  `json:"url"`
	State     string  `json:"readyState"`
	Target    string  `json:"target"`
	CreatedAt int64   `json:"createdAt"`
	Creator   Creator `json:"creator"`
}

// Created returns the deployment's creation time.
func (d *Deployment) Created() time.Time {
	return time.UnixMilli(d.CreatedAt)
}

type Creator struct {
	UID      string `json:"uid"`
	Username string `json:"username"`
}

// Team is a shared account projects may belong to.
type Team struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// User is the personal account behind the access token.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Org is the resolved scope of a command: either a team or the personal
// account.
type Org struct {
	ID   string
	Slug string
	Type OrgType
}

type OrgType string

const (
	OrgTypeUser OrgType = "user"
	OrgTypeTeam OrgType = "team"
)

// TeamID returns the team id to pass as the teamId query parameter, or the
// empty string for personal scopes.
func (o *Org) TeamID() string {
	if o.Type == OrgTypeTeam {
		return o.ID
	}
	return ""
}
