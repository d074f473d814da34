package toml

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/leetcoder-bot/leetcoder/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"

	DataDirKey      = "data.dir"
	ProblemsDirKey  = "problems.dir"
	SolvedPathKey   = "solved.path"
	SolutionsDirKey = "solutions.dir"

	dataFileMode   = 0o600
	dataDirMode    = 0o700
	defaultDataDir = ".leetcoder"
	solvedFile     = "solved.toml"
	problemsDir    = "problems"
	solutionsDir   = "solutions"
	tomlExt        = ".toml"
	legacyJSONExt  = ".json"
)

// Repository is the file-backed problem catalog. Problems are one file per
// slug under the problems directory, the solved set is a single TOML file and
// submitted code goes to the solutions directory.
type Repository struct {
	problemsDir  string
	solvedPath   string
	solutionsDir string
	ordering     domain.Ordering
	now          func() time.Time
	solvedMu     *sync.RWMutex
	problemsMu   *sync.RWMutex
}

type Option func(*Repository)

// WithOrdering sets the order ListAll returns. The default is lexical.
func WithOrdering(ordering domain.Ordering) Option {
	return func(r *Repository) {
		if ordering != nil {
			r.ordering = ordering
		}
	}
}

func WithNow(now func() time.Time) Option {
	return func(r *Repository) {
		if now != nil {
			r.now = now
		}
	}
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var (
	_ ports.ProblemLibrary = (*Repository)(nil)
	_ ports.SolutionStore  = (*Repository)(nil)
)

func NewRepository(cfg *viper.Viper, opts ...Option) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetDefault(DataDirKey, filepath.Join(homeDir, defaultDataDir))
	dataDir := cfg.GetString(DataDirKey)

	if cfg.ConfigFileUsed() == "" {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(dataDir)

		err = cfg.ReadInConfig()
		if err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
		dataDir = cfg.GetString(DataDirKey)
	}

	cfg.SetDefault(ProblemsDirKey, filepath.Join(dataDir, problemsDir))
	cfg.SetDefault(SolvedPathKey, filepath.Join(dataDir, solvedFile))
	cfg.SetDefault(SolutionsDirKey, filepath.Join(dataDir, solutionsDir))

	paths := map[string]string{}
	for _, key := range []string{ProblemsDirKey, SolvedPathKey, SolutionsDirKey} {
		raw := cfg.GetString(key)
		if raw == "" {
			return nil, fmt.Errorf("%s is empty", key)
		}
		normalized, err := normalizePath(raw)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", key, err)
		}
		paths[key] = normalized
	}

	r := &Repository{
		problemsDir:  paths[ProblemsDirKey],
		solvedPath:   paths[SolvedPathKey],
		solutionsDir: paths[SolutionsDirKey],
		ordering:     domain.SortedOrder{},
		now:          time.Now,
		solvedMu:     lockForPath(paths[SolvedPathKey]),
		problemsMu:   lockForPath(paths[ProblemsDirKey]),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func (r *Repository) ProblemsDir() string { return r.problemsDir }

func (r *Repository) SolvedPath() string { return r.solvedPath }

// ListAll lists every problem file, .toml or legacy .json, in the configured
// order.
func (r *Repository) ListAll(ctx context.Context) ([]domain.ProblemID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.problemsMu.RLock()
	defer r.problemsMu.RUnlock()

	entries, err := os.ReadDir(r.problemsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.ProblemID{}, nil
		}
		return nil, fmt.Errorf("read problems directory: %w", err)
	}

	seen := make(map[domain.ProblemID]struct{}, len(entries))
	ids := make([]domain.ProblemID, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != tomlExt && ext != legacyJSONExt {
			continue
		}

		id := domain.ProblemID(strings.TrimSuffix(entry.Name(), ext))
		if _, ok := seen[id]; ok || id.Validate() != nil {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return r.ordering.Order(ids), nil
}

func (r *Repository) AddProblem(ctx context.Context, id domain.ProblemID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := id.Validate(); err != nil {
		return false, err
	}
	if strings.ContainsAny(string(id), `/\`) {
		return false, fmt.Errorf("invalid problem id %q", id)
	}

	r.problemsMu.Lock()
	defer r.problemsMu.Unlock()

	for _, ext := range []string{tomlExt, legacyJSONExt} {
		if _, err := os.Stat(filepath.Join(r.problemsDir, string(id)+ext)); err == nil {
			return false, nil
		}
	}

	data, err := toml.Marshal(problemSchema{
		Version: currentSchemaVersion,
		Slug:    string(id),
		Title:   id.Title(),
		AddedAt: formatTime(r.now()),
	})
	if err != nil {
		return false, fmt.Errorf("encode problem file: %w", err)
	}

	if err := writeFileAtomic(filepath.Join(r.problemsDir, string(id)+tomlExt), data); err != nil {
		return false, err
	}

	return true, nil
}

func (r *Repository) IsSolved(ctx context.Context, id domain.ProblemID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.solvedMu.RLock()
	defer r.solvedMu.RUnlock()

	file, err := r.readSolved()
	if err != nil {
		return false, err
	}

	return containsString(file.Solved, string(id)), nil
}

// MarkSolved appends id to the solved set. Marking twice is a no-op.
func (r *Repository) MarkSolved(ctx context.Context, id domain.ProblemID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := id.Validate(); err != nil {
		return err
	}

	r.solvedMu.Lock()
	defer r.solvedMu.Unlock()

	file, err := r.readSolved()
	if err != nil {
		return err
	}

	if containsString(file.Solved, string(id)) {
		return nil
	}
	file.Solved = append(file.Solved, string(id))

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSolved(file)
}

func (r *Repository) ListSolved(ctx context.Context) ([]domain.ProblemID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.solvedMu.RLock()
	defer r.solvedMu.RUnlock()

	file, err := r.readSolved()
	if err != nil {
		return nil, err
	}

	ids := make([]domain.ProblemID, 0, len(file.Solved))
	for _, entry := range file.Solved {
		ids = append(ids, domain.ProblemID(entry))
	}

	return ids, nil
}

func (r *Repository) SaveSolution(ctx context.Context, record domain.SolutionRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := record.Problem.Validate(); err != nil {
		return err
	}

	timestamp := record.Timestamp
	if timestamp.IsZero() {
		timestamp = r.now()
	}

	data, err := toml.Marshal(solutionSchema{
		Version:     currentSchemaVersion,
		ProblemName: string(record.Problem),
		Language:    string(record.Language),
		GeneratedBy: string(record.GeneratedBy),
		Outcome:     string(record.Outcome),
		Timestamp:   formatTime(timestamp),
		Code:        record.Code,
	})
	if err != nil {
		return fmt.Errorf("encode solution file: %w", err)
	}

	path := filepath.Join(r.solutionsDir, string(record.Problem)+tomlExt)
	mu := lockForPath(path)
	mu.Lock()
	defer mu.Unlock()

	return writeFileAtomic(path, data)
}

// LoadSolution reads back a solution written by SaveSolution.
func (r *Repository) LoadSolution(ctx context.Context, id domain.ProblemID) (domain.SolutionRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.SolutionRecord{}, err
	}

	path := filepath.Join(r.solutionsDir, string(id)+tomlExt)
	mu := lockForPath(path)
	mu.RLock()
	defer mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.SolutionRecord{}, fmt.Errorf("solution %q: %w", id, domain.ErrProblemNotFound)
		}
		return domain.SolutionRecord{}, fmt.Errorf("read solution file: %w", err)
	}

	var file solutionSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.SolutionRecord{}, fmt.Errorf("decode solution file: %w", err)
	}
	if err := validateVersion("solution", file); err != nil {
		return domain.SolutionRecord{}, err
	}

	return domain.SolutionRecord{
		Problem:     domain.ProblemID(file.ProblemName),
		Language:    domain.Language(file.Language),
		Code:        file.Code,
		GeneratedBy: domain.GeneratedBy(file.GeneratedBy),
		Outcome:     domain.Outcome(file.Outcome),
		Timestamp:   parseTime(file.Timestamp),
	}, nil
}

// readSolved returns an empty set when the file does not exist yet. A legacy
// JSON array file is accepted when the configured path ends in .json.
func (r *Repository) readSolved() (solvedSchema, error) {
	data, err := os.ReadFile(r.solvedPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := solvedSchema{}
			file.applyDefaults()
			return file, nil
		}
		return solvedSchema{}, fmt.Errorf("read solved file: %w", err)
	}

	var file solvedSchema
	if filepath.Ext(r.solvedPath) == legacyJSONExt {
		if err := json.Unmarshal(data, &file.Solved); err != nil {
			return solvedSchema{}, fmt.Errorf("decode solved file: %w", err)
		}
	} else if err := toml.Unmarshal(data, &file); err != nil {
		return solvedSchema{}, fmt.Errorf("decode solved file: %w", err)
	}
	if err := validateVersion("solved", file); err != nil {
		return solvedSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSolved(file solvedSchema) error {
	file.applyDefaults()
	sort.Strings(file.Solved)

	var (
		data []byte
		err  error
	)
	if filepath.Ext(r.solvedPath) == legacyJSONExt {
		data, err = json.Marshal(file.Solved)
	} else {
		data, err = toml.Marshal(file)
	}
	if err != nil {
		return fmt.Errorf("encode solved file: %w", err)
	}

	return writeFileAtomic(r.solvedPath, data)
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dataDirMode); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tempFile.Chmod(dataFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}

	cleanup = false

	return nil
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}

	return false
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
