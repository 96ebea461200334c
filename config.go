package aoc

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/zerr"
)

// Default configuration values.
const (
	DefaultYear        = 2023
	DefaultInputDir    = "inputs"
	DefaultBaseURL     = "https://adventofcode.com"
	DefaultSessionFile = "~/keys/aoc.session"

	// SessionEnv overrides the session token from the config file.
	SessionEnv = "AOC_SESSION"
)

// Config is the runner configuration. It is read from an optional JSON file.
type Config struct {
	Year        int    `json:"year"`
	InputDir    string `json:"input_dir"`
	BaseURL     string `json:"base_url"`
	Session     string `json:"session"`
	SessionFile string `json:"session_file"`

	// Answers holds known answers keyed by day number, one per part.
	Answers map[string][]string `json:"answers"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Year:        DefaultYear,
		InputDir:    DefaultInputDir,
		BaseURL:     DefaultBaseURL,
		SessionFile: DefaultSessionFile,
	}
}

// LoadConfig loads the configuration at path on top of the defaults. A
// missing file is not an error. The session token is resolved from, in order,
// the AOC_SESSION environment variable, the file's session field and the
// session file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			k := koanf.New(".")
			if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
				return Config{}, zerr.With(zerr.Wrap(err, "failed to load config"), "path", path)
			}
			if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
				return Config{}, zerr.With(zerr.Wrap(err, "failed to unmarshal config"), "path", path)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, zerr.With(zerr.Wrap(err, "failed to stat config"), "path", path)
		}
	}

	if cfg.Year == 0 {
		cfg.Year = DefaultYear
	}
	cfg.InputDir = strings.TrimSpace(cfg.InputDir)
	if cfg.InputDir == "" {
		cfg.InputDir = DefaultInputDir
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if v := strings.TrimSpace(os.Getenv(SessionEnv)); v != "" {
		cfg.Session = v
	}
	cfg.Session = strings.TrimSpace(cfg.Session)
	if cfg.Session == "" && cfg.SessionFile != "" {
		b, err := os.ReadFile(expandHome(cfg.SessionFile))
		switch {
		case err == nil:
			cfg.Session = strings.TrimSpace(string(b))
		case !errors.Is(err, fs.ErrNotExist):
			return Config{}, zerr.With(zerr.Wrap(err, "failed to read session file"), "path", cfg.SessionFile)
		}
	}
	return cfg, nil
}

// Expected returns the known answers for day, if any.
func (c Config) Expected(day int) []string {
	return c.Answers[strconv.Itoa(day)]
}

func expandHome(p string) string {
	rest, ok := strings.CutPrefix(p, "~/")
	if !ok {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, rest)
}
