package congestion_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fourstep/assign"
	"github.com/katalvlaran/fourstep/congestion"
	"github.com/katalvlaran/fourstep/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCongestedTime_ZeroVolume: the Smock curve anchors at 0.5·freeFlow,
// not at freeFlow.
func TestCongestedTime_ZeroVolume(t *testing.T) {
	for _, capa := range []float64{1, 100, 1e6} {
		for _, fft := range []float64{0, 0.5, 3.0} {
			got, err := congestion.CongestedTime(0, capa, fft)
			require.NoError(t, err)
			assert.Equal(t, 0.5*fft, got)
		}
	}
}

// TestCongestedTime_StrictlyIncreasing verifies monotonicity in volume.
func TestCongestedTime_StrictlyIncreasing(t *testing.T) {
	prev := -1.0
	for vol := 0.0; vol <= 2000; vol += 100 {
		got, err := congestion.CongestedTime(vol, 500, 3.0)
		require.NoError(t, err)
		assert.Greater(t, got, prev, "volume %g", vol)
		prev = got
	}
}

// TestCongestedTime_ExactFormula pins the closed form.
func TestCongestedTime_ExactFormula(t *testing.T) {
	got, err := congestion.CongestedTime(750, 500, 3.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*3.0*math.Exp(1.5), got, 1e-12)
}

// TestCongestedTime_HalvedCapacityRatio: halving capacity at constant
// volume scales the congested time by exp(volume/capacity).
func TestCongestedTime_HalvedCapacityRatio(t *testing.T) {
	const vol, capa, fft = 400.0, 500.0, 2.5

	full, err := congestion.CongestedTime(vol, capa, fft)
	require.NoError(t, err)
	half, err := congestion.CongestedTime(vol, capa/2, fft)
	require.NoError(t, err)

	assert.InDelta(t, math.Exp(vol/capa), half/full, 1e-9)
}

// TestCongestedTime_DomainErrors covers the sentinels.
func TestCongestedTime_DomainErrors(t *testing.T) {
	_, err := congestion.CongestedTime(10, 0, 1)
	assert.ErrorIs(t, err, congestion.ErrInvalidCapacity)

	_, err = congestion.CongestedTime(10, -5, 1)
	assert.ErrorIs(t, err, congestion.ErrInvalidCapacity)

	_, err = congestion.CongestedTime(-1, 100, 1)
	assert.ErrorIs(t, err, congestion.ErrNegativeVolume)
}

// TestApply_CongestibleOnly verifies car links get Smock times while rail
// links stay at free-flow.
func TestApply_CongestibleOnly(t *testing.T) {
	b := core.NewBuilder()
	_, _ = b.AddNode("A", 0, 0)
	_, _ = b.AddNode("B", 0, 2)
	require.NoError(t, b.Connect("A", "B", core.Car, core.Rail))
	net, err := b.Build()
	require.NoError(t, err)

	st := assign.NewState(net)
	for i := range st.Volume {
		st.Volume[i] = 300
	}

	require.NoError(t, congestion.Apply(net, st, 1.0))

	for i, l := range net.Links() {
		if l.Mode == core.Car {
			want := 0.5 * l.FreeFlowTime * math.Exp(300/l.Capacity)
			assert.InDelta(t, want, st.Time[i], 1e-12)
		} else {
			assert.Equal(t, l.FreeFlowTime, st.Time[i])
		}
	}
}

// TestApply_CapacityFactor verifies the scenario factor scales capacity
// before the curve is evaluated, and that factor ≤ 0 is rejected.
func TestApply_CapacityFactor(t *testing.T) {
	b := core.NewBuilder()
	_, _ = b.AddNode("A", 0, 0)
	_, _ = b.AddNode("B", 0, 2)
	require.NoError(t, b.Connect("A", "B", core.Car))
	net, err := b.Build()
	require.NoError(t, err)

	st := assign.NewState(net)
	for i := range st.Volume {
		st.Volume[i] = 450
	}

	require.NoError(t, congestion.Apply(net, st, 0.9))
	for i, l := range net.Links() {
		want := 0.5 * l.FreeFlowTime * math.Exp(450/(l.Capacity*0.9))
		assert.InDelta(t, want, st.Time[i], 1e-12)
	}

	assert.ErrorIs(t, congestion.Apply(net, st, 0), congestion.ErrInvalidCapacity)
}
