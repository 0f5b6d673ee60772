package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/lantern/internal/paths"
	"github.com/mesh-intelligence/lantern/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
	envPrefix      = "LANTERN"

	cfgKeyRoot           = "root"
	cfgKeyDataDir        = "data_dir"
	cfgKeyLanguage       = "language"
	cfgKeyReadme         = "readme"
	cfgKeyProblemBaseURL = "problem_base_url"
	cfgKeyGraphQLURL     = "graphql_url"
	cfgKeyLogLevel       = "log.level"
	cfgKeyLogFormat      = "log.format"
)

// envKeys are read from LANTERN_* variables. root and data_dir are resolved
// by the paths package so the config file can take precedence over the
// environment for them.
var envKeys = []string{
	cfgKeyLanguage,
	cfgKeyReadme,
	cfgKeyProblemBaseURL,
	cfgKeyGraphQLURL,
	cfgKeyLogLevel,
	cfgKeyLogFormat,
}

// configFile holds the structure written to config.yaml.
type configFile struct {
	Root           string          `yaml:"root,omitempty"`
	DataDir        string          `yaml:"data_dir,omitempty"`
	Language       string          `yaml:"language"`
	Readme         string          `yaml:"readme"`
	ProblemBaseURL string          `yaml:"problem_base_url"`
	GraphQLURL     string          `yaml:"graphql_url"`
	Log            types.LogConfig `yaml:"log"`
}

const configHeader = "# Lantern configuration\n# Flags and LANTERN_* environment variables override these values.\n\n"

func (a *app) configDir() (string, error) {
	dir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return dir, nil
}

// loadConfig reads config.yaml from configDir using Viper, after loading a
// .env file from the working directory. A missing config.yaml or .env is
// not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLanguage, types.DefaultLanguage)
	v.SetDefault(cfgKeyReadme, types.DefaultReadme)
	v.SetDefault(cfgKeyProblemBaseURL, types.DefaultProblemBaseURL)
	v.SetDefault(cfgKeyGraphQLURL, types.DefaultGraphQLURL)
	v.SetDefault(cfgKeyLogLevel, types.DefaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, types.DefaultLogFormat)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// buildConfig turns the loaded settings and the global flags into a
// validated types.Config.
func buildConfig(v *viper.Viper, f rootFlags) (types.Config, error) {
	root, err := paths.ResolveRootDir(f.root, v.GetString(cfgKeyRoot))
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve root: %w", err)
	}
	dataDir, err := paths.ResolveDataDir(f.dataDir, v.GetString(cfgKeyDataDir), root)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Root:           root,
		DataDir:        dataDir,
		Readme:         v.GetString(cfgKeyReadme),
		Language:       v.GetString(cfgKeyLanguage),
		ProblemBaseURL: v.GetString(cfgKeyProblemBaseURL),
		GraphQLURL:     v.GetString(cfgKeyGraphQLURL),
		Log: types.LogConfig{
			Level:  v.GetString(cfgKeyLogLevel),
			Format: v.GetString(cfgKeyLogFormat),
		},
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// writeConfigIfMissing creates config.yaml with the given values if the file
// does not exist. It reports whether the file was written.
func writeConfigIfMissing(path string, cfg configFile) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	return true, os.WriteFile(path, append([]byte(configHeader), data...), 0o644)
}

func defaultConfigFile(cfg types.Config) configFile {
	return configFile{
		Language:       cfg.Language,
		Readme:         cfg.Readme,
		ProblemBaseURL: cfg.ProblemBaseURL,
		GraphQLURL:     cfg.GraphQLURL,
		Log:            cfg.Log,
	}
}
