package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/clauser-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

// TestNewStore verifies the database file and schema are created.
func TestNewStore(t *testing.T) {
	store := newTestStore(t)

	assert.FileExists(t, store.Path())

	// Migrations must have been applied
	var version int
	row := store.db.QueryRow("SELECT MAX(version) FROM schema_migrations")
	require.NoError(t, row.Scan(&version))
	assert.Equal(t, 2, version)
}

// TestNewStoreReopen verifies migrations are not re-applied on reopen.
func TestNewStoreReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	var count int
	row := store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations")
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 2, count)
}

// TestStandardStoreSaveGet verifies a standard round-trips with its raw bytes.
func TestStandardStoreSaveGet(t *testing.T) {
	store := newTestStore(t)
	standards := store.StandardStore()
	ctx := context.Background()

	std := &domain.Standard{
		ID:         "std-1",
		Name:       "EN 50126.pdf",
		Text:       "[Page 1]\nRailway applications.",
		Size:       4,
		Data:       []byte("%PDF"),
		UploadedAt: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, standards.Save(ctx, std))

	got, err := standards.Get(ctx, "std-1")
	require.NoError(t, err)
	assert.Equal(t, std.Name, got.Name)
	assert.Equal(t, std.Text, got.Text)
	assert.Equal(t, std.Size, got.Size)
	assert.Equal(t, std.Data, got.Data)
}

// TestStandardStoreGetNotFound verifies a missing ID maps to ErrNotFound.
func TestStandardStoreGetNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.StandardStore().Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestStandardStoreUpsert verifies saving the same ID twice updates in place.
func TestStandardStoreUpsert(t *testing.T) {
	store := newTestStore(t)
	standards := store.StandardStore()
	ctx := context.Background()

	std := &domain.Standard{ID: "std-1", Name: "old.pdf", Data: []byte("a"), Size: 1, UploadedAt: time.Now()}
	require.NoError(t, standards.Save(ctx, std))

	std.Name = "new.pdf"
	require.NoError(t, standards.Save(ctx, std))

	all, err := standards.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "new.pdf", all[0].Name)
}

// TestStandardStoreListMeta verifies ListMeta omits raw bytes but keeps size.
func TestStandardStoreListMeta(t *testing.T) {
	store := newTestStore(t)
	standards := store.StandardStore()
	ctx := context.Background()

	require.NoError(t, standards.Save(ctx, &domain.Standard{
		ID: "std-1", Name: "a.pdf", Size: 5, Data: []byte("hello"), UploadedAt: time.Now(),
	}))

	metas, err := standards.ListMeta(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Nil(t, metas[0].Data)
	assert.Equal(t, int64(5), metas[0].Size)
}

// TestStandardStoreDelete verifies removal, and that deleting twice is a no-op.
func TestStandardStoreDelete(t *testing.T) {
	store := newTestStore(t)
	standards := store.StandardStore()
	ctx := context.Background()

	require.NoError(t, standards.Save(ctx, &domain.Standard{ID: "std-1", Name: "a.pdf", UploadedAt: time.Now()}))
	require.NoError(t, standards.Delete(ctx, "std-1"))

	_, err := standards.Get(ctx, "std-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.NoError(t, standards.Delete(ctx, "std-1"))
}

// TestMessageStoreRoundTrip verifies messages list back in timestamp order
// with citations intact.
func TestMessageStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	messages := store.MessageStore()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, messages.Append(ctx, &domain.Message{
		ID: "m2", Role: domain.RoleAssistant, Body: "See clause 4.2.",
		Citations: []domain.Citation{{Standard: "EN 50126", Clause: "4.2", Page: 12}},
		CreatedAt: base.Add(time.Second),
	}))
	require.NoError(t, messages.Append(ctx, &domain.Message{
		ID: "m1", Role: domain.RoleUser, Body: "What does EN 50126 say?",
		CreatedAt: base,
	}))

	got, err := messages.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Oldest first regardless of insertion order
	assert.Equal(t, "m1", got[0].ID)
	assert.Equal(t, domain.RoleUser, got[0].Role)
	assert.Nil(t, got[0].Citations)

	assert.Equal(t, "m2", got[1].ID)
	require.Len(t, got[1].Citations, 1)
	assert.Equal(t, "EN 50126", got[1].Citations[0].Standard)
	assert.Equal(t, 12, got[1].Citations[0].Page)
}

// TestMessageStoreClear verifies Clear empties the transcript.
func TestMessageStoreClear(t *testing.T) {
	store := newTestStore(t)
	messages := store.MessageStore()
	ctx := context.Background()

	require.NoError(t, messages.Append(ctx, &domain.Message{
		ID: "m1", Role: domain.RoleUser, Body: "hello", CreatedAt: time.Now(),
	}))
	require.NoError(t, messages.Clear(ctx))

	got, err := messages.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
