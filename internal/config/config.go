package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/acedergren/agentic-tools/internal/catalog"
	"github.com/acedergren/agentic-tools/internal/logger"
)

// Settings come from (highest first) flags, AGENTIC_TOOLS_* environment
// variables, ~/.agentic-tools/config.yaml, and the defaults below. The working
// directory is never searched: it is usually the consumer project, whose own
// config.yaml has nothing to do with this tool.
const (
	// EnvPrefix is the prefix of environment overrides, e.g. AGENTIC_TOOLS_ROOT
	EnvPrefix = "AGENTIC_TOOLS"
	// ConfigDir is the user config directory under $HOME
	ConfigDir = ".agentic-tools"
	// ConfigName is the config file name without extension
	ConfigName = "config"

	KeyRoot      = "root"
	KeyVariant   = "variant"
	KeyCatalog   = "catalog"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Settings is the resolved configuration for one invocation
type Settings struct {
	// SourceRoot is the canonical source tree (skills/, agents/, hooks)
	SourceRoot string
	// Variant selects a built-in catalog
	Variant string
	// VariantSet is true when the variant came from a flag, the environment or
	// the config file rather than the default
	VariantSet bool
	// CatalogFile, when set, replaces the built-in catalog
	CatalogFile string
	LogLevel    string
	LogFormat   string
}

// Init wires defaults, environment variables and the optional config file
// into v. A missing config file is not an error.
func Init(v *viper.Viper) error {
	v.SetDefault(KeyRoot, DefaultSourceRoot())
	v.SetDefault(KeyCatalog, "")
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "fmt")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ConfigDir))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "failed to read config file")
	}
	return nil
}

// Load reads the settings out of v
func Load(v *viper.Viper) (*Settings, error) {
	root, err := filepath.Abs(v.GetString(KeyRoot))
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve source root")
	}

	variant := v.GetString(KeyVariant)
	s := &Settings{
		SourceRoot:  root,
		Variant:     variant,
		VariantSet:  variant != "",
		CatalogFile: v.GetString(KeyCatalog),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFormat:   v.GetString(KeyLogFormat),
	}
	if !s.VariantSet {
		s.Variant = catalog.VariantAgenticTools
	}
	if _, err := catalog.ForVariant(s.Variant); err != nil && s.CatalogFile == "" {
		return nil, err
	}
	return s, nil
}

// Catalog returns the catalog to use: the configured manifest file, else an
// explicitly chosen variant, else a catalog.yaml shipped at the top of the
// source root, else the default variant.
func (s *Settings) Catalog() (catalog.Catalog, error) {
	log := logger.L.WithField("root", s.SourceRoot)

	if s.CatalogFile != "" {
		log.WithField("manifest", s.CatalogFile).Info("using catalog manifest")
		return catalog.Load(s.CatalogFile)
	}

	if !s.VariantSet {
		shipped := filepath.Join(s.SourceRoot, catalog.ManifestFilename)
		if _, err := os.Stat(shipped); err == nil {
			log.WithField("manifest", shipped).Info("using catalog shipped with the source tree")
			return catalog.Load(shipped)
		}
	}

	log.WithField("variant", s.Variant).Info("using built-in catalog")
	return catalog.ForVariant(s.Variant)
}

// DefaultSourceRoot is the directory above the one holding the executable,
// matching a package that ships its binary in bin/ next to skills/.
// It falls back to the working directory.
func DefaultSourceRoot() string {
	exe, err := os.Executable()
	if err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(filepath.Dir(exe))
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}
