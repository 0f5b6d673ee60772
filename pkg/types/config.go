package types

import (
	"errors"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Defaults applied by the CLI config layer when a key is not set.
const (
	DefaultReadme         = "README.md"
	DefaultLanguage       = LanguagePython
	DefaultProblemBaseURL = "https://leetcode.com/problems/"
	DefaultGraphQLURL     = "https://leetcode.com/graphql"
	DefaultLogLevel       = "warn"
	DefaultLogFormat      = "console"

	// DataDirName is the data directory under Root when DataDir is unset.
	DataDirName = ".lantern"
)

// Config is the explicit configuration handed to the index synchronizer,
// the workspace scaffolder and the favorites store at construction time.
type Config struct {
	// Root is the solutions repository the index lives in.
	Root string `json:"root" yaml:"root"`

	// DataDir holds the favorites database.
	DataDir string `json:"data_dir" yaml:"data_dir,omitempty"`

	// Readme is the index document name, relative to Root.
	Readme string `json:"readme" yaml:"readme"`

	// Language is the default language code for new solutions.
	Language string `json:"language" yaml:"language"`

	// ProblemBaseURL prefixes a problem slug to build its canonical URL.
	ProblemBaseURL string `json:"problem_base_url" yaml:"problem_base_url"`

	// GraphQLURL is the problem catalog endpoint.
	GraphQLURL string `json:"graphql_url" yaml:"graphql_url"`

	Log LogConfig `json:"log" yaml:"log"`
}

// LogConfig selects level and output format for the logging provider.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
}

// Config validation errors.
var (
	ErrRootEmpty       = errors.New("root must not be empty")
	ErrLanguageUnknown = errors.New("unknown language")
	ErrBaseURLInvalid  = errors.New("problem base url must end with a slash")
)

// Validate checks that the Config is well-formed. Sentinel errors from this
// package are returned for the fields callers branch on; the rest surface
// as ozzo validation errors.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return ErrRootEmpty
	}
	if c.Language != "" {
		if _, ok := LookupLanguage(c.Language); !ok {
			return ErrLanguageUnknown
		}
	}
	if c.ProblemBaseURL != "" && !strings.HasSuffix(c.ProblemBaseURL, "/") {
		return ErrBaseURLInvalid
	}

	return validation.ValidateStruct(&c,
		validation.Field(&c.Readme, validation.Required),
		validation.Field(&c.ProblemBaseURL, is.URL),
		validation.Field(&c.GraphQLURL, is.URL),
		validation.Field(&c.Log),
	)
}

// Validate implements validation.Validatable so Config.Validate can descend
// into the log block.
func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("", "trace", "debug", "info", "warn", "warning", "error", "fatal")),
		validation.Field(&l.Format, validation.In("", "json", "console", "pretty")),
	)
}

// ReadmePath returns the index document path joined under Root.
func (c Config) ReadmePath() string {
	readme := c.Readme
	if readme == "" {
		readme = DefaultReadme
	}
	return filepath.Join(c.Root, readme)
}

// DataPath returns DataDir, or Root/.lantern when it is unset.
func (c Config) DataPath() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return filepath.Join(c.Root, DataDirName)
}
