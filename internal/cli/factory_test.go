package cli_test

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskcal/internal/cli"
	"taskcal/internal/config"
	"taskcal/internal/service"
)

func openWith(t *testing.T, settings config.Settings) (*config.Config, service.Service) {
	t.Helper()
	cfg := &config.Config{Dir: t.TempDir(), Settings: settings}
	svc, err := cli.OpenLocal(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { svc.(io.Closer).Close() })
	return cfg, svc
}

func exerciseStore(t *testing.T, svc service.Service) {
	t.Helper()
	ctx := context.Background()

	_, err := svc.CreateList(ctx, "Groceries")
	require.NoError(t, err)

	snap, err := svc.Lists(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Records, 1)
	assert.Equal(t, "list 1", snap.Records[0].Key)
	assert.Equal(t, "Groceries", snap.Records[0].List.Title)
}

func TestOpenLocal_Memory(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Store.Driver = config.DriverMemory

	_, svc := openWith(t, settings)
	exerciseStore(t, svc)
}

func TestOpenLocal_SQLite(t *testing.T) {
	cfg, svc := openWith(t, config.DefaultSettings())
	exerciseStore(t, svc)

	_, err := os.Stat(cfg.DatabasePath())
	assert.NoError(t, err, "database file should exist")
}

func TestOpenLocal_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	settings := config.DefaultSettings()
	settings.Store.Driver = config.DriverRedis
	settings.Store.RedisURL = "redis://" + mr.Addr() + "/0"

	_, svc := openWith(t, settings)
	exerciseStore(t, svc)

	assert.True(t, mr.Exists("taskcal:list 1"))
}

func TestOpenLocal_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	settings := config.DefaultSettings()
	settings.Store.Driver = config.DriverRedis
	settings.Store.RedisURL = "redis://" + addr + "/0"

	_, err := cli.OpenLocal(context.Background(), &config.Config{Dir: t.TempDir(), Settings: settings})
	assert.Error(t, err)
}

func TestOpenLocal_UnknownDriver(t *testing.T) {
	settings := config.DefaultSettings()
	settings.Store.Driver = "etcd"

	_, err := cli.OpenLocal(context.Background(), &config.Config{Dir: t.TempDir(), Settings: settings})
	assert.EqualError(t, err, "unknown store driver: etcd")
}
