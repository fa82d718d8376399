package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_InvalidateDashboards(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewStore(rdb)

	require.NoError(t, mr.Set("dashboard:rest-1", `{"ordersAllTime":3}`))
	require.NoError(t, mr.Set("dashboard:rest-2", `{"ordersAllTime":1}`))
	require.NoError(t, mr.Set("dashboard:rest-3", `{"ordersAllTime":9}`))

	require.NoError(t, store.InvalidateDashboards(context.Background(), "rest-1", "rest-2", "rest-4"))

	assert.False(t, mr.Exists("dashboard:rest-1"))
	assert.False(t, mr.Exists("dashboard:rest-2"))
	assert.True(t, mr.Exists("dashboard:rest-3"))
	assert.NoError(t, store.InvalidateDashboards(context.Background()))

	gen, err := mr.Get("dashboard:rest-1:gen")
	require.NoError(t, err)
	assert.Equal(t, "1", gen)
	assert.False(t, mr.Exists("dashboard:rest-3:gen"))

	require.NoError(t, store.InvalidateDashboards(context.Background(), "rest-1"))
	gen, err = mr.Get("dashboard:rest-1:gen")
	require.NoError(t, err)
	assert.Equal(t, "2", gen)
}
