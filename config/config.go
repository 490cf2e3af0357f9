package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config wraps viper. Settings come from flags, then BOGGLER_* environment
// variables, then defaults.
type Config struct {
	v *viper.Viper
}

func (c *Config) Load(args []string) error {
	c.v = viper.New()
	fs := pflag.NewFlagSet("boggler", pflag.ContinueOnError)
	fs.String("data-path", "./data/lexica", "directory holding lexicon files")
	fs.String("default-lexicon", "NWL23", "the lexicon to load on startup")
	fs.Bool("debug", false, "debug logging on")
	fs.String("cpu-profile", "", "write cpu profile to file")
	fs.String("mem-profile", "", "write memory profile to file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.v.SetEnvPrefix("boggler")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return c.v.BindPFlags(fs)
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// AllSettings returns every setting, for logging at startup.
func (c *Config) AllSettings() map[string]interface{} {
	return c.v.AllSettings()
}

// FindBasePath searches upward from the given path for a directory that
// contains a "data" directory. If none is found it returns the original
// path. This lets the binary run from deep inside a build tree.
func FindBasePath(path string) string {
	for {
		if _, err := os.Stat(filepath.Join(path, "data")); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}

// AdjustRelativePaths resolves relative data paths against the base path,
// typically the executable's directory, so the shell works no matter where
// it is launched from.
func (c *Config) AdjustRelativePaths(basePath string) {
	basePath = FindBasePath(basePath)
	c.v.Set("data-path", toAbsPath(basePath, c.v.GetString("data-path"), "data-path"))
}

func toAbsPath(basePath, path, logname string) string {
	if strings.HasPrefix(path, "./") {
		path = filepath.Join(basePath, path)
		log.Info().Str(logname, path).Msg("adjusted-path")
	}
	return path
}
