package toml

import "fmt"

const currentSchemaVersion = 1

type versioned interface {
	schemaVersion() int
}

func validateVersion(kind string, s versioned) error {
	if s.schemaVersion() > currentSchemaVersion {
		return fmt.Errorf("unsupported %s schema version %d (current %d)", kind, s.schemaVersion(), currentSchemaVersion)
	}

	return nil
}

type solvedSchema struct {
	Version int      `toml:"version"`
	Solved  []string `toml:"solved"`
}

func (s solvedSchema) schemaVersion() int { return s.Version }

func (s *solvedSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

type problemSchema struct {
	Version int    `toml:"version"`
	Slug    string `toml:"slug"`
	Title   string `toml:"title"`
	AddedAt string `toml:"added_at,omitempty"`
}

func (s problemSchema) schemaVersion() int { return s.Version }

type solutionSchema struct {
	Version     int    `toml:"version"`
	ProblemName string `toml:"problem_name"`
	Language    string `toml:"language"`
	GeneratedBy string `toml:"generated_by"`
	Outcome     string `toml:"outcome"`
	Timestamp   string `toml:"timestamp"`
	Code        string `toml:"code,multiline"`
}

func (s solutionSchema) schemaVersion() int { return s.Version }
