package chain

import (
	"context"
	"errors"
	"fmt"

	envstore "github.com/leetcoder-bot/leetcoder/internal/adapters/secrets/env"
	filestore "github.com/leetcoder-bot/leetcoder/internal/adapters/secrets/file"
	passstore "github.com/leetcoder-bot/leetcoder/internal/adapters/secrets/pass"
	"github.com/leetcoder-bot/leetcoder/internal/domain"
	"github.com/leetcoder-bot/leetcoder/internal/ports"
)

type Backend struct {
	Name  string
	Store ports.SecretStore
}

// Store resolves secrets from an ordered list of backends. Reads return the
// first hit; writes land in the first backend that accepts them.
type Store struct {
	backends []Backend
}

var _ ports.SecretStore = (*Store)(nil)

var errNoBackends = errors.New("secret chain has no backends")

func NewStore(backends ...Backend) (*Store, error) {
	if len(backends) == 0 {
		return nil, errNoBackends
	}
	for i, backend := range backends {
		if backend.Store == nil {
			return nil, fmt.Errorf("secret backend %d (%s) is nil", i, backend.Name)
		}
	}

	return &Store{backends: backends}, nil
}

// NewDefault reads GEMINI_API_KEY from the environment first, then pass, then
// files under fileRoot.
func NewDefault(fileRoot string) (*Store, error) {
	return NewStore(
		Backend{Name: "env", Store: envstore.NewStore(nil)},
		Backend{Name: "pass", Store: passstore.NewStore()},
		Backend{Name: "file", Store: filestore.NewStore(fileRoot)},
	)
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var errs []error
	allMissing := true

	for _, backend := range s.backends {
		value, err := backend.Store.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		if shouldSkipFallback(err) {
			return "", err
		}
		if !isMissing(err) {
			allMissing = false
		}
		errs = append(errs, fmt.Errorf("%s backend get failed: %w", backend.Name, err))
	}

	if allMissing {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}

	return "", errors.Join(errs...)
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	var errs []error

	for _, backend := range s.backends {
		err := backend.Store.Put(ctx, key, value)
		if err == nil {
			return nil
		}
		if shouldSkipFallback(err) {
			return err
		}
		if errors.Is(err, envstore.ErrReadOnly) {
			continue
		}
		errs = append(errs, fmt.Errorf("%s backend put failed: %w", backend.Name, err))
	}

	if len(errs) == 0 {
		return fmt.Errorf("secret %q: no writable backend", key)
	}

	return errors.Join(errs...)
}

// Delete removes key from every writable backend so a stale copy cannot
// shadow a later write.
func (s *Store) Delete(ctx context.Context, key string) error {
	var (
		errs    []error
		deleted bool
	)

	for _, backend := range s.backends {
		err := backend.Store.Delete(ctx, key)
		if shouldSkipFallback(err) {
			return err
		}
		switch {
		case err == nil:
			deleted = true
		case errors.Is(err, envstore.ErrReadOnly), errors.Is(err, passstore.ErrUnavailable):
		default:
			errs = append(errs, fmt.Errorf("%s backend delete failed: %w", backend.Name, err))
		}
	}

	if !deleted && len(errs) == 0 {
		return fmt.Errorf("secret %q: no writable backend", key)
	}

	return errors.Join(errs...)
}

func isMissing(err error) bool {
	return errors.Is(err, domain.ErrSecretNotFound) || errors.Is(err, passstore.ErrUnavailable)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
