package chain

import (
	"context"
	"errors"
	"testing"

	envstore "github.com/leetcoder-bot/leetcoder/internal/adapters/secrets/env"
	passstore "github.com/leetcoder-bot/leetcoder/internal/adapters/secrets/pass"
	"github.com/leetcoder-bot/leetcoder/internal/domain"
	portmocks "github.com/leetcoder-bot/leetcoder/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const key = domain.GeminiAPIKeySecret

func newChain(t *testing.T) (*Store, *portmocks.MockSecretStore, *portmocks.MockSecretStore) {
	t.Helper()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store, err := NewStore(Backend{Name: "pass", Store: primary}, Backend{Name: "file", Store: fallback})
	require.NoError(t, err)

	return store, primary, fallback
}

func TestNewStoreRejectsMissingBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStore()
	require.ErrorIs(t, err, errNoBackends)

	_, err = NewStore(Backend{Name: "pass"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "(pass) is nil")
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Get(mock.Anything, key).Return("from-pass", nil).Once()

	value, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "from-pass", value)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, key).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Get(mock.Anything, key).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetAllMissingIsNotFound(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, key).Return("", passstore.ErrUnavailable).Once()
	fallback.EXPECT().Get(mock.Anything, key).Return("", domain.ErrSecretNotFound).Once()

	_, err := store.Get(context.Background(), key)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Get(mock.Anything, key).Return("", errors.New("gpg failed")).Once()
	fallback.EXPECT().Get(mock.Anything, key).Return("", errors.New("file failed")).Once()

	_, err := store.Get(context.Background(), key)
	require.Error(t, err)
	assert.ErrorContains(t, err, "pass backend get failed")
	assert.ErrorContains(t, err, "file backend get failed")
	assert.ErrorContains(t, err, "gpg failed")
	assert.ErrorContains(t, err, "file failed")
	assert.False(t, errors.Is(err, domain.ErrSecretNotFound))
}

func TestStorePutFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Put(mock.Anything, key, "secret").Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Put(mock.Anything, key, "secret").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), key, "secret"))
}

func TestStorePutDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Put(mock.Anything, key, "secret").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), key, "secret"))
}

func TestStorePutSkipsReadOnlyBackend(t *testing.T) {
	t.Parallel()

	writable := portmocks.NewMockSecretStore(t)
	store, err := NewStore(
		Backend{Name: "env", Store: envstore.NewStore(nil)},
		Backend{Name: "file", Store: writable},
	)
	require.NoError(t, err)
	writable.EXPECT().Put(mock.Anything, key, "secret").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), key, "secret"))
}

func TestStoreDeleteRemovesFromEveryBackend(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Delete(mock.Anything, key).Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, key).Return(nil).Once()

	require.NoError(t, store.Delete(context.Background(), key))
}

func TestStoreDeleteReportsBackendFailure(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newChain(t)
	primary.EXPECT().Delete(mock.Anything, key).Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Delete(mock.Anything, key).Return(errors.New("permission denied")).Once()

	err := store.Delete(context.Background(), key)
	require.Error(t, err)
	assert.ErrorContains(t, err, "file backend delete failed")
}

func TestStoreGetDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	store, primary, _ := newChain(t)
	primary.EXPECT().Get(mock.Anything, key).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), key)
	require.ErrorIs(t, err, context.Canceled)
}
