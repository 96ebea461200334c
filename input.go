package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
	"go.trai.ch/zerr"
)

// InputSource provides the puzzle input for a day.
type InputSource interface {
	Input(ctx context.Context, year, day int) ([]byte, error)
}

// DirSource reads inputs from Dir/<year>/<day>.input. When Session is set and
// the file is missing, the input is downloaded from BaseURL and cached there.
type DirSource struct {
	Dir     string
	BaseURL string
	Session string
	Client  *http.Client
	Log     zerolog.Logger
}

// NewDirSource returns a DirSource configured from cfg.
func NewDirSource(cfg Config, log zerolog.Logger) *DirSource {
	return &DirSource{
		Dir:     cfg.InputDir,
		BaseURL: cfg.BaseURL,
		Session: cfg.Session,
		Client:  http.DefaultClient,
		Log:     log,
	}
}

// Path returns the input file path for the given day.
func (s *DirSource) Path(year, day int) string {
	return filepath.Join(s.Dir, strconv.Itoa(year), strconv.Itoa(day)+".input")
}

func (s *DirSource) Input(ctx context.Context, year, day int) ([]byte, error) {
	path := s.Path(year, day)
	b, err := os.ReadFile(path)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, &MissingInputError{Day: day, Path: path, Err: err}
	}
	if s.Session == "" {
		return nil, &MissingInputError{Day: day, Path: path}
	}

	url := fmt.Sprintf("%s/%d/day/%d/input", s.BaseURL, year, day)
	s.Log.Info().Str("url", url).Str("path", path).Msg("downloading puzzle input")
	body, err := s.fetch(ctx, url)
	if err != nil {
		return nil, &MissingInputError{Day: day, Path: path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create input directory"), "path", path)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to cache input"), "path", path)
	}
	return body, nil
}

func (s *DirSource) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to build request")
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: s.Session})

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fetch input")
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, zerr.With(zerr.New("bad status fetching input"), "status", res.Status)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read input body")
	}
	return body, nil
}

// StaticSource serves inputs from memory, keyed by day.
type StaticSource map[int][]byte

func (s StaticSource) Input(_ context.Context, _, day int) ([]byte, error) {
	b, ok := s[day]
	if !ok {
		return nil, &MissingInputError{Day: day, Path: "memory"}
	}
	return b, nil
}
