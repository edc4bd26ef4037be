package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/neon-boards/internal/adapters/documents"
	"github.com/bnema/neon-boards/internal/domain"
	"github.com/bnema/neon-boards/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardsQuery(accountID domain.AccountID) ports.DocumentQuery {
	return ports.DocumentQuery{Collection: "neondb", AccountID: accountID, DocumentID: "boards"}
}

func TestStoreRejectsInvalidQueries(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		query   ports.DocumentQuery
		wantErr string
	}{
		{name: "empty account", query: boardsQuery(""), wantErr: "account id is empty"},
		{name: "whitespace account", query: boardsQuery("   "), wantErr: "account id is empty"},
		{name: "traversal", query: boardsQuery(".."), wantErr: "account id"},
		{name: "separator", query: boardsQuery("a/b"), wantErr: "account id"},
		{name: "empty collection", query: ports.DocumentQuery{AccountID: "1", DocumentID: "boards"}, wantErr: "collection is empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Save(context.Background(), tc.query, domain.BoardCollection{})
			require.ErrorIs(t, err, documents.ErrInvalidQuery)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStoreSaveQueryRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)
	want := domain.BoardCollection{"foo": domain.Board(`{"title":"Foo"}`)}

	require.NoError(t, store.Save(context.Background(), boardsQuery("1"), want))

	got, err := store.Query(context.Background(), boardsQuery("1"))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	info, err := os.Stat(filepath.Join(root, "neondb", "1", "boards.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(documentFileMode), info.Mode().Perm())
}

func TestStoreQueryMissingDocumentReturnsNil(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	got, err := store.Query(context.Background(), boardsQuery("1"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreQueryIsAccountScoped(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	require.NoError(t, store.Save(context.Background(), boardsQuery("1"), domain.BoardCollection{"a": domain.Board(`{}`)}))

	got, err := store.Query(context.Background(), boardsQuery("2"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreSaveNilCollectionStoresEmptyObject(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Save(context.Background(), boardsQuery("1"), nil))

	data, err := os.ReadFile(filepath.Join(root, "neondb", "1", "boards.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestStoreQueryCorruptDocumentReturnsError(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := filepath.Join(root, "neondb", "1", "boards.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))

	_, err := NewStore(root).Query(context.Background(), boardsQuery("1"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode board collection")
}
