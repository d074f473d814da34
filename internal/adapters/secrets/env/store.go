// Package env exposes secrets set in the process environment.
package env

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/leetcoder-bot/leetcoder/internal/ports"
)

var ErrReadOnly = errors.New("environment secret store is read-only")

// DefaultVariables maps secret keys onto the variables the tool has always
// read them from.
var DefaultVariables = map[string]string{
	domain.GeminiAPIKeySecret: "GEMINI_API_KEY",
}

type Store struct {
	variables map[string]string
	lookup    func(string) (string, bool)
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore(variables map[string]string) *Store {
	if variables == nil {
		variables = DefaultVariables
	}

	return &Store{variables: variables, lookup: os.LookupEnv}
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, ok := s.variables[key]
	if !ok {
		return "", fmt.Errorf("env secret %q: no variable mapped: %w", key, domain.ErrSecretNotFound)
	}

	value, ok := s.lookup(name)
	if !ok || strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("env secret %q: %s is not set: %w", key, name, domain.ErrSecretNotFound)
	}

	return strings.TrimSpace(value), nil
}

func (s *Store) Put(context.Context, string, string) error {
	return ErrReadOnly
}

func (s *Store) Delete(context.Context, string) error {
	return ErrReadOnly
}
