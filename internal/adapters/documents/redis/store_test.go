package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/bnema/neon-boards/internal/adapters/documents"
	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	store, err := NewStore("redis://" + server.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store, server
}

func boardsQuery(accountID domain.AccountID) ports.DocumentQuery {
	return ports.DocumentQuery{Collection: "neondb", AccountID: accountID, DocumentID: "boards"}
}

func TestNewStoreRejectsBadURL(t *testing.T) {
	_, err := NewStore("not-a-url")
	require.Error(t, err)
	assert.ErrorContains(t, err, "parse redis url")
}

func TestNewStoreFailsWhenServerIsDown(t *testing.T) {
	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	_, err := NewStore("redis://" + addr)
	require.Error(t, err)
	assert.ErrorContains(t, err, "connect to redis")
}

func TestStoreCloseDropsConnection(t *testing.T) {
	store, server := setupTestRedis(t)
	require.NoError(t, store.Ping(context.Background()))
	assert.Eventually(t, func() bool { return server.CurrentConnectionCount() > 0 }, time.Second, 10*time.Millisecond)

	require.NoError(t, store.Close())

	assert.Eventually(t, func() bool { return server.CurrentConnectionCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestStoreSaveAndQuery(t *testing.T) {
	store, server := setupTestRedis(t)
	ctx := context.Background()
	want := domain.BoardCollection{"foo": domain.Board(`{"title":"Foo"}`)}

	require.NoError(t, store.Save(ctx, boardsQuery("1"), want))

	got, err := store.Query(ctx, boardsQuery("1"))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	raw, err := server.Get("neon:documents:neondb:1:boards")
	require.NoError(t, err)
	assert.JSONEq(t, `{"foo":{"title":"Foo"}}`, raw)
}

func TestStoreQueryMissingDocumentReturnsNil(t *testing.T) {
	store, _ := setupTestRedis(t)

	got, err := store.Query(context.Background(), boardsQuery("1"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreQueryIsAccountScoped(t *testing.T) {
	store, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, boardsQuery("1"), domain.BoardCollection{"a": domain.Board(`{}`)}))
	require.NoError(t, store.Save(ctx, boardsQuery("2"), domain.BoardCollection{"b": domain.Board(`{}`)}))

	got, err := store.Query(ctx, boardsQuery("2"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got.Keys())
}

func TestStoreQueryReportsServerFailure(t *testing.T) {
	store, server := setupTestRedis(t)
	server.SetError("LOADING redis is loading the dataset")

	_, err := store.Query(context.Background(), boardsQuery("1"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "get document 1/boards")
}

func TestStoreRejectsInvalidQuery(t *testing.T) {
	store, _ := setupTestRedis(t)

	err := store.Save(context.Background(), boardsQuery("a:b"), domain.BoardCollection{})
	require.ErrorIs(t, err, documents.ErrInvalidQuery)
}
