package dataset

import (
	"context"
	"encoding/json/v2"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/communitydirectory/directory-server/internal/domain"
)

// Collection file names inside the data directory.
const (
	businessesFile = "businesses.json"
	categoriesFile = "categories.json"
	suburbsFile    = "suburbs.json"
)

// businessEnvelope matches the published businesses.json wrapper.
type businessEnvelope struct {
	LastUpdated string            `json:"lastUpdated"`
	Businesses  []domain.Business `json:"businesses"`
}

type categoryEnvelope struct {
	LastUpdated string            `json:"lastUpdated"`
	Categories  []domain.Category `json:"categories"`
}

type suburbEnvelope struct {
	LastUpdated string          `json:"lastUpdated"`
	Suburbs     []domain.Suburb `json:"suburbs"`
}

// LocalSource reads the directory dataset from JSON envelope files in a
// directory. A missing file, a missing named array, or malformed JSON all
// yield an empty collection with a warning log, never an error.
type LocalSource struct {
	dir    string
	logger *slog.Logger
}

// NewLocalSource creates a source reading from dir.
func NewLocalSource(dir string, logger *slog.Logger) *LocalSource {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LocalSource{dir: dir, logger: logger}
}

// Dir returns the data directory this source reads from.
func (s *LocalSource) Dir() string {
	return s.dir
}

// Businesses implements Source.
func (s *LocalSource) Businesses(_ context.Context) ([]domain.Business, error) {
	var env businessEnvelope
	if !s.read(businessesFile, &env) || env.Businesses == nil {
		return []domain.Business{}, nil
	}
	return env.Businesses, nil
}

// Categories implements Source.
func (s *LocalSource) Categories(_ context.Context) ([]domain.Category, error) {
	var env categoryEnvelope
	if !s.read(categoriesFile, &env) || env.Categories == nil {
		return []domain.Category{}, nil
	}
	return env.Categories, nil
}

// Suburbs implements Source.
func (s *LocalSource) Suburbs(_ context.Context) ([]domain.Suburb, error) {
	var env suburbEnvelope
	if !s.read(suburbsFile, &env) || env.Suburbs == nil {
		return []domain.Suburb{}, nil
	}
	return env.Suburbs, nil
}

// Reviews implements Source. Local reviews live embedded in the business
// records, so there are no standalone rows to report.
func (s *LocalSource) Reviews(_ context.Context) ([]domain.Review, error) {
	return []domain.Review{}, nil
}

// read decodes one envelope file into out, logging instead of failing.
// Returns false when out must not be used (missing or malformed file).
func (s *LocalSource) read(name string, out any) bool {
	path := filepath.Join(s.dir, name)

	f, err := os.Open(path) //#nosec G304 -- path comes from operator config
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("dataset file missing, using empty collection", "file", name)
		} else {
			s.logger.Warn("dataset file unreadable, using empty collection", "file", name, "error", err)
		}
		return false
	}
	defer f.Close()

	if err := json.UnmarshalRead(f, out); err != nil {
		s.logger.Warn("dataset file malformed, using empty collection", "file", name, "error", err)
		return false
	}
	return true
}
