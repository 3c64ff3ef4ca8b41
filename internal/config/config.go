package config

import (
	"sync"

	"github.com/spf13/pflag"

	"github.com/vercel/cli/internal/env"
	"github.com/vercel/cli/internal/flag/flagnames"
)

const (
	// FileName denotes the name of the config file.
	FileName = "config.yml"

	envKeyPrefix        = "VERCEL_"
	apiBaseURLEnvKey    = envKeyPrefix + "API_BASE_URL"
	dashboardURLEnvKey  = envKeyPrefix + "DASHBOARD_BASE_URL"
	AccessTokenEnvKey   = envKeyPrefix + "TOKEN"
	APITokenEnvKey      = envKeyPrefix + "API_TOKEN"
	AccessTokenFileKey  = "access_token"
	TeamFileKey         = "team"
	scopeEnvKey         = envKeyPrefix + "SCOPE"
	teamEnvKey          = envKeyPrefix + "TEAM"
	verboseOutputEnvKey = envKeyPrefix + "VERBOSE"
	jsonOutputEnvKey    = envKeyPrefix + "JSON"

	defaultAPIBaseURL       = "https://api.vercel.com"
	defaultDashboardBaseURL = "https://vercel.com"
)

// Config wraps the functionality of the configuration file.
//
// Instances of Config are safe for concurrent use.
type Config struct {
	mu sync.RWMutex

	// APIBaseURL denotes the base URL of the API.
	APIBaseURL string

	// DashboardBaseURL denotes the base URL of the web dashboard.
	DashboardBaseURL string

	// VerboseOutput denotes whether the user wants the output to be verbose.
	VerboseOutput bool

	// JSONOutput denotes whether the user wants the output to be JSON.
	JSONOutput bool

	// Team denotes the team slug the user has selected.
	Team string

	// AccessToken denotes the user's access token.
	AccessToken string
}

// New returns a new instance of Config populated with default values.
func New() *Config {
	return &Config{
		APIBaseURL:       defaultAPIBaseURL,
		DashboardBaseURL: defaultDashboardBaseURL,
	}
}

// ApplyEnv sets the properties of cfg which may be set via environment
// variables to the values these variables contain.
func (cfg *Config) ApplyEnv() {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()

	cfg.AccessToken = env.FirstOrDefault(cfg.AccessToken,
		AccessTokenEnvKey, APITokenEnvKey)

	cfg.VerboseOutput = env.IsTruthy(verboseOutputEnvKey) || cfg.VerboseOutput
	cfg.JSONOutput = env.IsTruthy(jsonOutputEnvKey) || cfg.JSONOutput

	cfg.Team = env.FirstOrDefault(cfg.Team, scopeEnvKey, teamEnvKey)
	cfg.APIBaseURL = env.FirstOrDefault(cfg.APIBaseURL, apiBaseURLEnvKey)
	cfg.DashboardBaseURL = env.FirstOrDefault(cfg.DashboardBaseURL, dashboardURLEnvKey)
}

// ApplyFile sets the properties of cfg which may be set via configuration file
// to the values the file at the given path contains.
func (cfg *Config) ApplyFile(path string) (err error) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()

	var w struct {
		AccessToken string `yaml:"access_token"`
		Team        string `yaml:"team"`
	}

	if err = unmarshal(path, &w); err == nil {
		cfg.AccessToken = w.AccessToken
		cfg.Team = w.Team
	}

	return
}

// ApplyFlags sets the properties of cfg which may be set via command line
// flags to the values the flags of the given FlagSet may contain.
func (cfg *Config) ApplyFlags(fs *pflag.FlagSet) {
	cfg.mu.Lock()
	defer cfg.mu.Unlock()

	applyStringFlags(fs, map[string]*string{
		flagnames.AccessToken: &cfg.AccessToken,
		flagnames.Scope:       &cfg.Team,
	})

	applyBoolFlags(fs, map[string]*bool{
		flagnames.Verbose:    &cfg.VerboseOutput,
		flagnames.JSONOutput: &cfg.JSONOutput,
	})
}

// Authenticated reports whether cfg carries an access token.
func (cfg *Config) Authenticated() bool {
	cfg.mu.RLock()
	defer cfg.mu.RUnlock()

	return cfg.AccessToken != ""
}

func applyStringFlags(fs *pflag.FlagSet, flags map[string]*string) {
	for name, dst := range flags {
		if !fs.Changed(name) {
			continue
		}

		if v, err := fs.GetString(name); err != nil {
			panic(err)
		} else {
			*dst = v
		}
	}
}

func applyBoolFlags(fs *pflag.FlagSet, flags map[string]*bool) {
	for name, dst := range flags {
		if !fs.Changed(name) {
			continue
		}

		if v, err := fs.GetBool(name); err != nil {
			panic(err)
		} else {
			*dst = v
		}
	}
}
