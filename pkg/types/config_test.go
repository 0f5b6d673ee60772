package types

import (
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
		anyErr  bool
	}{
		{
			name:    "empty root returns ErrRootEmpty",
			config:  Config{Root: "", Readme: DefaultReadme},
			wantErr: ErrRootEmpty,
		},
		{
			name:    "unknown language returns ErrLanguageUnknown",
			config:  Config{Root: "/tmp/sol", Readme: DefaultReadme, Language: "cobol"},
			wantErr: ErrLanguageUnknown,
		},
		{
			name:    "base url without trailing slash",
			config:  Config{Root: "/tmp/sol", Readme: DefaultReadme, ProblemBaseURL: "https://leetcode.com/problems"},
			wantErr: ErrBaseURLInvalid,
		},
		{
			name:   "missing readme name",
			config: Config{Root: "/tmp/sol"},
			anyErr: true,
		},
		{
			name:   "unsupported log format",
			config: Config{Root: "/tmp/sol", Readme: DefaultReadme, Log: LogConfig{Format: "xml"}},
			anyErr: true,
		},
		{
			name: "valid config",
			config: Config{
				Root:           "/tmp/sol",
				Readme:         DefaultReadme,
				Language:       "py",
				ProblemBaseURL: DefaultProblemBaseURL,
				GraphQLURL:     DefaultGraphQLURL,
				Log:            LogConfig{Level: "debug", Format: "console"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.anyErr {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				return
			}
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfigReadmePath(t *testing.T) {
	c := Config{Root: "/tmp/sol"}
	if got := c.ReadmePath(); got != "/tmp/sol/README.md" {
		t.Fatalf("ReadmePath() = %q", got)
	}
	c.Readme = "INDEX.md"
	if got := c.ReadmePath(); got != "/tmp/sol/INDEX.md" {
		t.Fatalf("ReadmePath() = %q", got)
	}
}
