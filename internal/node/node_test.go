package node

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vastcore/vast/pkg/vasterr"
)

func newTestNode(t *testing.T) *Node {
	t.Helper()
	n, err := New("test-node", t.TempDir())
	require.NoError(t, err)
	return n
}

func TestSpawnAssignsSequentialLabels(t *testing.T) {
	n := newTestNode(t)
	ctx := context.Background()

	h1, err := n.Spawn(ctx, "spawn source", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "source-1", h1.Label)

	h2, err := n.Spawn(ctx, "spawn source", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "source-2", h2.Label)

	h3, err := n.Spawn(ctx, "spawn source", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "source-3", h3.Label)
}

func TestSpawnSingletonTwiceFails(t *testing.T) {
	n := newTestNode(t)
	ctx := context.Background()

	_, err := n.Spawn(ctx, "spawn archive", nil, nil)
	require.NoError(t, err)

	_, err = n.Spawn(ctx, "spawn archive", nil, nil)
	require.Error(t, err)
	assert.True(t, vasterr.Is(err, vasterr.AlreadyExists))
}

func TestSpawnUnknownTypeFails(t *testing.T) {
	n := newTestNode(t)
	_, err := n.Spawn(context.Background(), "spawn bogus", nil, nil)
	require.Error(t, err)
	assert.True(t, vasterr.Is(err, vasterr.InvalidSpawn))
}

func TestSourceAndImporterAutoWiring(t *testing.T) {
	n := newTestNode(t)
	ctx := context.Background()

	source, err := n.Spawn(ctx, "spawn source", nil, nil)
	require.NoError(t, err)

	importer, err := n.Spawn(ctx, "spawn importer", nil, nil)
	require.NoError(t, err)

	val, err := source.Request(ctx, Message{Kind: MsgStatus})
	require.NoError(t, err)
	peers, ok := val["wired"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, peers["sink"])
	_ = importer
}

func TestExporterAutoWiredToArchiveIndexAndSink(t *testing.T) {
	n := newTestNode(t)
	ctx := context.Background()

	_, err := n.Spawn(ctx, "spawn archive", nil, nil)
	require.NoError(t, err)
	_, err = n.Spawn(ctx, "spawn index", nil, nil)
	require.NoError(t, err)
	_, err = n.Spawn(ctx, "spawn sink", nil, nil)
	require.NoError(t, err)

	exporter, err := n.Spawn(ctx, "spawn exporter", nil, nil)
	require.NoError(t, err)

	val, err := exporter.Request(ctx, Message{Kind: MsgStatus})
	require.NoError(t, err)
	peers, ok := val["wired"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1, peers["archive"])
	assert.Equal(t, 1, peers["index"])
	assert.Equal(t, 1, peers["sink"])
}

func TestKillDeregistersComponent(t *testing.T) {
	n := newTestNode(t)
	ctx := context.Background()

	_, err := n.Spawn(ctx, "spawn source", nil, nil)
	require.NoError(t, err)
	_, err = n.Spawn(ctx, "spawn source", nil, nil)
	require.NoError(t, err)

	result, err := n.Kill(ctx, "source-2")
	require.NoError(t, err)
	assert.Equal(t, "ok", result)

	require.Eventually(t, func() bool {
		status, err := n.Status(ctx)
		require.NoError(t, err)
		top := status["test-node"].(map[string]any)
		components := top["components"].(map[string]any)
		_, stillPresent := components["source-2"]
		return !stillPresent
	}, time.Second, 10*time.Millisecond)
}

func TestKillUnknownLabelFails(t *testing.T) {
	n := newTestNode(t)
	_, err := n.Kill(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.True(t, vasterr.Is(err, vasterr.MissingComponent))
}

func TestShutdownOrdersStages(t *testing.T) {
	n := newTestNode(t)
	ctx := context.Background()

	var mu sync.Mutex
	var observed []string
	shutdownObserved = func(h *Handle) {
		mu.Lock()
		observed = append(observed, h.Label)
		mu.Unlock()
	}
	t.Cleanup(func() { shutdownObserved = nil })

	for _, full := range []string{
		"spawn accountant", "spawn source", "spawn importer",
		"spawn archive", "spawn index", "spawn exporter",
	} {
		_, err := n.Spawn(ctx, full, nil, nil)
		require.NoError(t, err)
	}

	require.NoError(t, n.Shutdown(ctx))

	status, err := n.Status(ctx)
	require.NoError(t, err)
	components := status["test-node"].(map[string]any)["components"].(map[string]any)
	assert.Empty(t, components)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{
		"accountant", "source-1", "importer", "archive", "index", "exporter-1", "filesystem",
	}, observed, "termination must be observed in exactly this order")
}

func TestStatusReportsWorkerAndInstanceCounts(t *testing.T) {
	n := newTestNode(t)
	status, err := n.Status(context.Background())
	require.NoError(t, err)
	top := status["test-node"].(map[string]any)
	system := top["system"].(map[string]any)
	assert.Greater(t, system["workers"], 0)
	assert.Contains(t, system, "in-memory-table-slices")
	assert.Contains(t, top["components"].(map[string]any), "filesystem")
}

func TestHandleCommandDispatchesSpawnKillStatus(t *testing.T) {
	n := newTestNode(t)
	ctx := context.Background()

	result, err := n.HandleCommand(ctx, "spawn source", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "source-1", result["label"])

	_, err = n.HandleCommand(ctx, "status", nil, nil)
	require.NoError(t, err)

	result, err = n.HandleCommand(ctx, "kill", nil, []string{"source-1"})
	require.NoError(t, err)
	assert.Equal(t, "ok", result["result"])
}

func TestHandleCommandUnknownVerbIsSyntaxError(t *testing.T) {
	n := newTestNode(t)
	_, err := n.HandleCommand(context.Background(), "frobnicate", nil, nil)
	require.Error(t, err)
	assert.True(t, vasterr.Is(err, vasterr.SyntaxError))
}
