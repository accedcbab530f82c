package coordinator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumekit/plume/internal/application/usecase"
	"github.com/plumekit/plume/internal/domain/entity"
)

// fakeSurface records every level the coordinator applies to it.
type fakeSurface struct {
	mu      sync.Mutex
	applied []int
	failErr error
	onApply func(level int)
}

func (f *fakeSurface) ApplyZoomLevel(_ context.Context, level int) error {
	f.mu.Lock()
	f.applied = append(f.applied, level)
	onApply := f.onApply
	f.mu.Unlock()
	if onApply != nil {
		onApply(level)
	}
	return f.failErr
}

func (f *fakeSurface) lastApplied() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.applied) == 0 {
		return 0
	}
	return f.applied[len(f.applied)-1]
}

func (f *fakeSurface) applyCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.applied)
}

// fakeZoomStore implements repository.SettingsRepository for persistence tests.
type fakeZoomStore struct {
	mu     sync.Mutex
	zoom   *entity.EditorZoom
	writes int
}

func (f *fakeZoomStore) GetEditorZoom(_ context.Context) (*entity.EditorZoom, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.zoom, nil
}

func (f *fakeZoomStore) SetEditorZoom(_ context.Context, zoom *entity.EditorZoom) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.zoom = zoom
	f.writes++
	return nil
}

func (f *fakeZoomStore) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func newTestCoordinator(t *testing.T) (*ZoomCoordinator, context.Context) {
	t.Helper()
	ctx := context.Background()
	return NewZoomCoordinator(ctx), ctx
}

func TestSetLevel_ClampsToBounds(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{"below minimum", 10, entity.ZoomMin},
		{"at minimum", 50, 50},
		{"in range", 130, 130},
		{"at maximum", 200, 200},
		{"above maximum", 290, entity.ZoomMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ctx := newTestCoordinator(t)
			c.SetLevel(ctx, tt.requested)
			assert.Equal(t, tt.want, c.Level())
		})
	}
}

func TestSetLevel_IdempotentShortCircuit(t *testing.T) {
	c, ctx := newTestCoordinator(t)
	store := &fakeZoomStore{}
	c.AttachSettings(ctx, usecase.NewManageZoomUseCase(store, entity.ZoomDefault))

	surface := &fakeSurface{}
	require.NoError(t, c.Register(ctx, surface))
	initialApplies := surface.applyCount()

	notifications := 0
	c.OnZoomChanged(func(int) { notifications++ })

	c.SetLevel(ctx, 150)
	c.SetLevel(ctx, 150)
	c.SetLevel(ctx, 200)
	// A raw value clamping to the current level is also a no-op.
	c.SetLevel(ctx, 250)

	assert.Equal(t, initialApplies+2, surface.applyCount(), "only two real changes should broadcast")
	assert.Equal(t, 2, store.writeCount(), "only two real changes should persist")
	assert.Equal(t, 2, notifications)
}

func TestSetLevel_BroadcastCompleteness(t *testing.T) {
	c, ctx := newTestCoordinator(t)

	surfaces := []*fakeSurface{{}, {}, {}}
	for _, s := range surfaces {
		require.NoError(t, c.Register(ctx, s))
	}

	c.SetLevel(ctx, 140)

	for i, s := range surfaces {
		assert.Equal(t, 140, s.lastApplied(), "surface %d must receive the new level", i)
	}
}

func TestSetLevel_FaultIsolation(t *testing.T) {
	c, ctx := newTestCoordinator(t)

	failing := &fakeSurface{failErr: errors.New("render backend gone")}
	healthy1 := &fakeSurface{}
	healthy2 := &fakeSurface{}
	require.NoError(t, c.Register(ctx, failing))
	require.NoError(t, c.Register(ctx, healthy1))
	require.NoError(t, c.Register(ctx, healthy2))

	c.SetLevel(ctx, 80)

	assert.Equal(t, 80, healthy1.lastApplied())
	assert.Equal(t, 80, healthy2.lastApplied())
	assert.Equal(t, 80, c.Level())
}

func TestRegister_LateJoinerGetsImmediateSync(t *testing.T) {
	c, ctx := newTestCoordinator(t)
	c.SetLevel(ctx, 150)

	late := &fakeSurface{}
	require.NoError(t, c.Register(ctx, late))

	assert.Equal(t, 150, late.lastApplied())
	assert.Equal(t, 1, late.applyCount())
}

func TestRegister_NilSurfaceRejected(t *testing.T) {
	c, ctx := newTestCoordinator(t)

	err := c.Register(ctx, nil)
	require.ErrorIs(t, err, ErrNilSurface)
	assert.Equal(t, 0, c.SurfaceCount())
}

func TestUnregister_StopsReceivingUpdates(t *testing.T) {
	c, ctx := newTestCoordinator(t)

	s1 := &fakeSurface{}
	s2 := &fakeSurface{}
	require.NoError(t, c.Register(ctx, s1))
	require.NoError(t, c.Register(ctx, s2))

	c.SetLevel(ctx, 75)
	c.Unregister(s1)
	c.SetLevel(ctx, 60)

	assert.Equal(t, 75, s1.lastApplied(), "unregistered surface keeps its last level")
	assert.Equal(t, 60, s2.lastApplied())
	assert.Equal(t, 1, c.SurfaceCount())
}

func TestUnregister_AbsentSurfaceIsNoOp(t *testing.T) {
	c, _ := newTestCoordinator(t)
	c.Unregister(&fakeSurface{})
	c.Unregister(nil)
	assert.Equal(t, 0, c.SurfaceCount())
}

func TestSetLevel_UnregisterDuringBroadcastIsSafe(t *testing.T) {
	c, ctx := newTestCoordinator(t)

	selfRemoving := &fakeSurface{}
	selfRemoving.onApply = func(level int) {
		if level != entity.ZoomDefault {
			c.Unregister(selfRemoving)
		}
	}
	other := &fakeSurface{}
	require.NoError(t, c.Register(ctx, selfRemoving))
	require.NoError(t, c.Register(ctx, other))

	assert.NotPanics(t, func() { c.SetLevel(ctx, 120) })

	assert.Equal(t, 120, other.lastApplied())
	assert.Equal(t, 1, c.SurfaceCount())

	c.SetLevel(ctx, 130)
	assert.Equal(t, 120, selfRemoving.lastApplied(), "removed surface must not see later levels")
}

func TestZoomLadderScenario(t *testing.T) {
	c, ctx := newTestCoordinator(t)
	require.Equal(t, entity.ZoomDefault, c.Level())

	c.ZoomIn(ctx, 10)
	assert.Equal(t, 110, c.Level())

	for i := 0; i < 9; i++ {
		c.ZoomIn(ctx, 10)
	}
	assert.Equal(t, entity.ZoomMax, c.Level(), "ladder clamps at max, not 290")

	c.ZoomOut(ctx, 10)
	assert.Equal(t, 190, c.Level())

	c.Reset(ctx)
	assert.Equal(t, entity.ZoomDefault, c.Level())
}

func TestZoomInOut_DefaultStep(t *testing.T) {
	c, ctx := newTestCoordinator(t)

	c.ZoomIn(ctx, 0)
	assert.Equal(t, entity.ZoomDefault+entity.ZoomStep, c.Level())

	c.ZoomOut(ctx, -5)
	assert.Equal(t, entity.ZoomDefault, c.Level())
}

func TestAttachSettings_RestoresSavedLevel(t *testing.T) {
	c, ctx := newTestCoordinator(t)

	surface := &fakeSurface{}
	require.NoError(t, c.Register(ctx, surface))

	store := &fakeZoomStore{zoom: entity.NewEditorZoom(130)}
	c.AttachSettings(ctx, usecase.NewManageZoomUseCase(store, entity.ZoomDefault))

	assert.Equal(t, 130, c.Level())
	assert.Equal(t, 130, surface.lastApplied(), "restore broadcasts to registered surfaces")
	assert.Equal(t, 0, store.writeCount(), "restoring a saved level must not write it back")
}

func TestAttachSettings_OutOfRangeSavedValueIgnored(t *testing.T) {
	c, ctx := newTestCoordinator(t)

	store := &fakeZoomStore{zoom: &entity.EditorZoom{Percent: 900}}
	c.AttachSettings(ctx, usecase.NewManageZoomUseCase(store, entity.ZoomDefault))

	assert.Equal(t, entity.ZoomDefault, c.Level())
}

func TestAttachSettings_PersistsSubsequentChanges(t *testing.T) {
	c, ctx := newTestCoordinator(t)
	store := &fakeZoomStore{}
	c.AttachSettings(ctx, usecase.NewManageZoomUseCase(store, entity.ZoomDefault))

	c.SetLevel(ctx, 160)

	require.NotNil(t, store.zoom)
	assert.Equal(t, 160, store.zoom.Percent)
}

func TestOnZoomChanged_FiresOncePerChange(t *testing.T) {
	c, ctx := newTestCoordinator(t)

	var levels []int
	c.OnZoomChanged(func(level int) { levels = append(levels, level) })
	c.OnZoomChanged(nil) // ignored

	c.SetLevel(ctx, 120)
	c.SetLevel(ctx, 120)
	c.SetLevel(ctx, 90)

	assert.Equal(t, []int{120, 90}, levels)
}

func TestZoomIn_ConcurrentStepsAllApply(t *testing.T) {
	c, ctx := newTestCoordinator(t)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.ZoomIn(ctx, 10)
		}()
	}
	wg.Wait()

	// Each step reads and adjusts the level under the lock, so no increment
	// can be lost to a concurrent one.
	assert.Equal(t, 150, c.Level())
}

func TestCoordinator_ConcurrentAccess(t *testing.T) {
	c, ctx := newTestCoordinator(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s := &fakeSurface{}
			_ = c.Register(ctx, s)
			c.SetLevel(ctx, entity.ZoomMin+n*10)
			c.Unregister(s)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, c.SurfaceCount())
	level := c.Level()
	assert.GreaterOrEqual(t, level, entity.ZoomMin)
	assert.LessOrEqual(t, level, entity.ZoomMax)
}
