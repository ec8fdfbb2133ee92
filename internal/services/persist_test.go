package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py2dev/repeatermap/internal/common"
	"github.com/py2dev/repeatermap/internal/models"
	"github.com/py2dev/repeatermap/internal/repositories/kv"
)

func TestLoadList_AbsentKey(t *testing.T) {
	store := kv.NewMemoryRepository()
	list, err := loadList[models.User](context.Background(), store, keyUsers)
	require.NoError(t, err)
	assert.Nil(t, list)
}

func TestLoadList_CorruptBlob(t *testing.T) {
	store := kv.NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, keyUsers, []byte(`{not json`)))
	_, err := loadList[models.User](ctx, store, keyUsers)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrCorruptData)
}

func TestSaveJSON_RoundTrip(t *testing.T) {
	store := kv.NewMemoryRepository()
	ctx := context.Background()

	in := []models.User{{Indicative: "PY2ABC", Email: "a@b.com"}}
	require.NoError(t, saveJSON(ctx, store, keyUsers, in))

	out, err := loadList[models.User](ctx, store, keyUsers)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
