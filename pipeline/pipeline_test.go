package pipeline_test

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclespace/basis"
	"github.com/katalvlaran/cyclespace/config"
	"github.com/katalvlaran/cyclespace/pipeline"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Graph.Size = 10
	cfg.Graph.Density = 0.15
	cfg.Graph.Seed = 7

	return cfg
}

func TestRun(t *testing.T) {
	t.Parallel()

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	res, err := pipeline.Run(context.Background(), testConfig(), log)
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.EqualValues(t, 7, res.Seed)
	assert.Equal(t, 10, res.Graph.NodeCount())
	assert.Len(t, res.Basis, res.Graph.CyclomaticNumber())
	require.NoError(t, basis.VerifyBasis(res.Graph, res.Basis))
	assert.GreaterOrEqual(t, len(res.Cycles), len(res.Basis))
	assert.False(t, res.Truncated)

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, res.RunID, e.Data["run_id"])
		assert.EqualValues(t, 7, e.Data["seed"])
	}
	assert.Equal(t, "Cycle space enumerated", hook.LastEntry().Message)
}

func TestRun_SameSeedSameResult(t *testing.T) {
	t.Parallel()

	log, _ := test.NewNullLogger()
	a, err := pipeline.Run(context.Background(), testConfig(), log)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.Enumerate.Workers = 3
	b, err := pipeline.Run(context.Background(), cfg, log)
	require.NoError(t, err)

	assert.NotEqual(t, a.RunID, b.RunID)
	assert.Equal(t, a.Graph.Edges(), b.Graph.Edges())
	assert.Equal(t, a.Basis, b.Basis)
	require.Equal(t, len(a.Cycles), len(b.Cycles))
	for i := range a.Cycles {
		assert.True(t, a.Cycles[i].Vector.Equal(b.Cycles[i].Vector))
	}
}

func TestRun_Truncated(t *testing.T) {
	t.Parallel()

	log, hook := test.NewNullLogger()
	cfg := testConfig()
	cfg.Graph.Density = 0.6
	cfg.Enumerate.MaxCycles = 5

	res, err := pipeline.Run(context.Background(), cfg, log)
	require.NoError(t, err)
	assert.True(t, res.Truncated)
	assert.Len(t, res.Cycles, 5)

	var warned bool
	for _, e := range hook.AllEntries() {
		warned = warned || e.Level == logrus.WarnLevel
	}
	assert.True(t, warned)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	log, _ := test.NewNullLogger()

	cfg := testConfig()
	cfg.Graph.Density = 2
	_, err := pipeline.Run(context.Background(), cfg, log)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg = testConfig()
	cfg.Graph.Density = 0.5
	_, err = pipeline.Run(ctx, cfg, log)
	assert.ErrorIs(t, err, context.Canceled)
}
