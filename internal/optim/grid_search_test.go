package optim

import (
	"context"
	"testing"

	"github.com/san-kum/ballsim/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Ticks = 60
	return cfg
}

func TestGridSearch_VisitsEveryPoint(t *testing.T) {
	g := NewGridSearch(
		[]string{"restitution", "bounce_factor"},
		[][]float64{{0.2, 0.8}, {0.3, 0.6, 0.9}},
		nil,
	)

	best, trials, err := g.Search(context.Background(), smallConfig(), "peak_energy")
	require.NoError(t, err)
	require.Len(t, trials, 6)

	for _, tr := range trials {
		assert.GreaterOrEqual(t, tr.Value, best.Value)
		assert.Len(t, tr.Params, 2)
	}
	assert.Contains(t, best.Params, "restitution")
}

func TestGridSearch_Errors(t *testing.T) {
	ctx := context.Background()

	_, _, err := NewGridSearch([]string{"mass"}, [][]float64{{1}}, nil).Search(ctx, smallConfig(), "energy")
	assert.Error(t, err)

	_, _, err = NewGridSearch([]string{"gravity"}, [][]float64{{1}}, nil).Search(ctx, smallConfig(), "nope")
	assert.Error(t, err)

	_, _, err = NewGridSearch([]string{"gravity"}, nil, nil).Search(ctx, smallConfig(), "energy")
	assert.Error(t, err)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, _, err = NewGridSearch([]string{"gravity"}, [][]float64{{1, 2}}, nil).Search(canceled, smallConfig(), "energy")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGridSearch_LeavesBaseUntouched(t *testing.T) {
	cfg := smallConfig()
	_, _, err := NewGridSearch([]string{"gravity"}, [][]float64{{100}}, nil).Search(context.Background(), cfg, "energy")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Physics, cfg.Physics)
}

func TestParseRange(t *testing.T) {
	v, err := ParseRange("0:1:5")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, v)

	v, err = ParseRange("0.6")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.6}, v)

	for _, bad := range []string{"a", "0:1", "0:1:1", "0:x:3", "0:1:n"} {
		_, err := ParseRange(bad)
		assert.Error(t, err, bad)
	}
}
