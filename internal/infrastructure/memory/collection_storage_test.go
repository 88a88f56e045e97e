package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestione-sindacale/internal/domain"
	"github.com/jhoicas/gestione-sindacale/internal/infrastructure/memory"
)

func TestRead_ClaveAusente(t *testing.T) {
	s := memory.NewCollectionStorage()
	snap, err := s.Read(context.Background(), "gs_members")
	require.NoError(t, err)
	assert.True(t, snap.Empty())
	assert.Zero(t, snap.Revision)
}

func TestWrite_RevisionOptimista(t *testing.T) {
	ctx := context.Background()
	s := memory.NewCollectionStorage()

	rev, err := s.Write(ctx, "k", []byte(`[1]`), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)

	_, err = s.Write(ctx, "k", []byte(`[2]`), 0)
	assert.ErrorIs(t, err, domain.ErrRevisionConflict)

	rev, err = s.Write(ctx, "k", []byte(`[1,2]`), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rev)

	snap, err := s.Read(ctx, "k")
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2]`, string(snap.Data))
	assert.Equal(t, int64(2), snap.Revision)
}

func TestRead_NullConservaRevision(t *testing.T) {
	ctx := context.Background()
	s := memory.NewCollectionStorage()
	_, err := s.Write(ctx, "gs_current_session", []byte("null"), 0)
	require.NoError(t, err)

	snap, err := s.Read(ctx, "gs_current_session")
	require.NoError(t, err)
	assert.True(t, snap.Empty())
	assert.Equal(t, int64(1), snap.Revision)
}

func TestRead_DevuelveCopia(t *testing.T) {
	ctx := context.Background()
	s := memory.NewCollectionStorage()
	data := []byte(`["a"]`)
	_, err := s.Write(ctx, "k", data, 0)
	require.NoError(t, err)
	data[2] = 'z'

	snap, _ := s.Read(ctx, "k")
	snap.Data[2] = 'y'
	again, _ := s.Read(ctx, "k")
	assert.Equal(t, `["a"]`, string(again.Data))
}

func TestWrite_SoloUnGanadorPorRevision(t *testing.T) {
	ctx := context.Background()
	s := memory.NewCollectionStorage()

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Write(ctx, "k", []byte(`[]`), 0); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}
