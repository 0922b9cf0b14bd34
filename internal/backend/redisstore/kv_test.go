package redisstore_test

import (
	"context"
	"sort"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskcal/internal/backend/redisstore"
	"taskcal/internal/store"
	"taskcal/internal/tasklist"
)

func newKV(t *testing.T, prefix string) (*redisstore.KV, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	kv := redisstore.New(client, prefix)
	t.Cleanup(func() { _ = kv.Close() })
	return kv, mr
}

func TestKV_PutGetUsesPrefix(t *testing.T) {
	ctx := context.Background()
	kv, mr := newKV(t, "taskcal:")

	require.NoError(t, kv.Put(ctx, "list 1", []byte(`{"id":1}`)))

	raw, err := mr.Get("taskcal:list 1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, raw)

	v, err := kv.Get(ctx, "list 1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, string(v))
}

func TestKV_GetMissing(t *testing.T) {
	kv, _ := newKV(t, "")

	_, err := kv.Get(context.Background(), "list 9")

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestKV_KeysStripsPrefix(t *testing.T) {
	ctx := context.Background()
	kv, mr := newKV(t, "u1:")

	require.NoError(t, kv.Put(ctx, "list 1", []byte("a")))
	require.NoError(t, kv.Put(ctx, "list 2", []byte("b")))
	require.NoError(t, mr.Set("u2:list 1", "other user"))
	require.NoError(t, mr.Set("u1:settings", "x"))

	keys, err := kv.Keys(ctx, store.KeyPrefix)
	require.NoError(t, err)
	sort.Strings(keys)
	assert.Equal(t, []string{"list 1", "list 2"}, keys)
}

func TestKV_Delete(t *testing.T) {
	ctx := context.Background()
	kv, mr := newKV(t, "p:")

	require.NoError(t, kv.Put(ctx, "list 1", []byte("a")))
	require.NoError(t, kv.Delete(ctx, "list 1"))

	assert.False(t, mr.Exists("p:list 1"))
}

func TestKV_WithRepository(t *testing.T) {
	ctx := context.Background()
	kv, mr := newKV(t, "taskcal:")
	repo := store.NewRepository(kv)

	require.NoError(t, repo.Put(ctx, "list 1", tasklist.TaskList{ID: 111111, Title: "Redis"}))
	require.NoError(t, mr.Set("taskcal:list 2", "garbage"))

	snap, err := repo.Enumerate(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Records, 1)
	assert.Equal(t, "Redis", snap.Records[0].List.Title)
	require.Len(t, snap.Malformed, 1)
	assert.Equal(t, "list 2", snap.Malformed[0].Key)
}

func TestOpen(t *testing.T) {
	mr := miniredis.RunT(t)

	kv, err := redisstore.Open(context.Background(), "redis://"+mr.Addr()+"/0", "x:")
	require.NoError(t, err)
	require.NoError(t, kv.Close())

	kv, err = redisstore.Open(context.Background(), mr.Addr(), "x:")
	require.NoError(t, err)
	require.NoError(t, kv.Close())
}

func TestOpen_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := redisstore.Open(context.Background(), addr, "")

	assert.Error(t, err)
}
