package core_test

import (
	"testing"

	"github.com/katalvlaran/fourstep/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildBerlinMunich constructs the canonical two-node, two-mode network
// used across the test suite.
func buildBerlinMunich(t *testing.T, opts ...core.Option) *core.Network {
	t.Helper()

	b := core.NewBuilder(opts...)
	_, err := b.AddNode("Berlin", 52.5200, 13.4050)
	require.NoError(t, err)
	_, err = b.AddNode("Munich", 48.1374, 11.5755)
	require.NoError(t, err)
	require.NoError(t, b.Connect("Berlin", "Munich", core.Car, core.Rail))

	net, err := b.Build()
	require.NoError(t, err)

	return net
}

// TestBuilder_PairInvariant verifies that every (unordered pair, mode)
// yields exactly two directed link rows.
func TestBuilder_PairInvariant(t *testing.T) {
	net := buildBerlinMunich(t)

	require.Equal(t, 4, net.NumLinks(), "2 modes × 2 directions")

	count := map[[3]int]int{}
	for _, l := range net.Links() {
		count[[3]int{int(l.From), int(l.To), int(l.Mode)}]++
	}
	for key, c := range count {
		assert.Equal(t, 1, c, "directed row %v must be unique", key)
	}
	// Both directions present for both modes.
	for _, m := range []core.Mode{core.Car, core.Rail} {
		assert.Contains(t, count, [3]int{0, 1, int(m)})
		assert.Contains(t, count, [3]int{1, 0, int(m)})
	}
}

// TestBuilder_DerivedAttributes checks distance, free-flow time, cost and
// capacity derivation against independent recomputation.
func TestBuilder_DerivedAttributes(t *testing.T) {
	net := buildBerlinMunich(t)

	dist := core.GreatCircleKm(52.5200, 13.4050, 48.1374, 11.5755)
	for _, l := range net.Links() {
		assert.InDelta(t, dist, l.DistanceKm, 1e-9)
		assert.Equal(t, core.DefaultCapacity, l.Capacity)

		switch l.Mode {
		case core.Car:
			assert.InDelta(t, dist/core.DefaultCarSpeedKmh, l.FreeFlowTime, 1e-12)
			assert.InDelta(t, core.CarFare(dist), l.Cost, 1e-12)
		case core.Rail:
			assert.InDelta(t, dist/core.DefaultRailSpeedKmh, l.FreeFlowTime, 1e-12)
			assert.InDelta(t, core.RailFare(dist), l.Cost, 1e-12)
		}
	}
}

// TestBuilder_ConnectIdempotent verifies repeated Connect calls do not
// duplicate link rows.
func TestBuilder_ConnectIdempotent(t *testing.T) {
	b := core.NewBuilder()
	_, _ = b.AddNode("A", 0, 0)
	_, _ = b.AddNode("B", 0, 1)
	require.NoError(t, b.Connect("A", "B", core.Car))
	require.NoError(t, b.Connect("B", "A", core.Car)) // same unordered pair
	require.NoError(t, b.Connect("A", "B", core.Car, core.Rail))

	net, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 4, net.NumLinks(), "car pair once, rail pair once")
}

// TestBuilder_Groups verifies the OD-group index: ordered by (From, To),
// one link per mode inside each group, modes ascending.
func TestBuilder_Groups(t *testing.T) {
	net := buildBerlinMunich(t)

	groups := net.Groups()
	require.Len(t, groups, 2, "one group per direction")
	assert.Less(t, int(groups[0].From), int(groups[1].From))

	links := net.Links()
	for _, g := range groups {
		require.Len(t, g.Links, 2, "one link per mode")
		assert.Equal(t, core.Car, links[g.Links[0]].Mode)
		assert.Equal(t, core.Rail, links[g.Links[1]].Mode)
		for _, li := range g.Links {
			assert.Equal(t, g.From, links[li].From)
			assert.Equal(t, g.To, links[li].To)
		}
	}
}

// TestBuilder_Errors exercises the construction sentinels.
func TestBuilder_Errors(t *testing.T) {
	t.Run("duplicate node", func(t *testing.T) {
		b := core.NewBuilder()
		_, err := b.AddNode("A", 0, 0)
		require.NoError(t, err)
		_, err = b.AddNode("A", 1, 1)
		assert.ErrorIs(t, err, core.ErrDuplicateNode)
		_, err = b.Build()
		assert.ErrorIs(t, err, core.ErrDuplicateNode, "Build re-reports latched errors")
	})

	t.Run("unknown node", func(t *testing.T) {
		b := core.NewBuilder()
		_, _ = b.AddNode("A", 0, 0)
		err := b.Connect("A", "Z", core.Car)
		assert.ErrorIs(t, err, core.ErrUnknownNode)
		assert.ErrorContains(t, err, "Z", "error must name the missing node")
	})

	t.Run("self link", func(t *testing.T) {
		b := core.NewBuilder()
		_, _ = b.AddNode("A", 0, 0)
		assert.ErrorIs(t, b.Connect("A", "A", core.Car), core.ErrSelfLink)
	})

	t.Run("no nodes", func(t *testing.T) {
		_, err := core.NewBuilder().Build()
		assert.ErrorIs(t, err, core.ErrNoNodes)
	})
}

// TestNetwork_Registry verifies the bidirectional id↔name lookup.
func TestNetwork_Registry(t *testing.T) {
	net := buildBerlinMunich(t)

	for _, n := range net.Nodes() {
		name, err := net.NameOf(n.ID)
		require.NoError(t, err)
		id, err := net.IDOf(name)
		require.NoError(t, err)
		assert.Equal(t, n.ID, id, "IDOf(NameOf(id)) must round-trip")
	}

	_, err := net.NameOf(core.NodeID(99))
	assert.ErrorIs(t, err, core.ErrUnknownNode)
	_, err = net.IDOf("Atlantis")
	assert.ErrorIs(t, err, core.ErrUnknownNode)
}

// TestNetwork_ModeSpecOverride verifies WithModeSpec replaces a behaviour
// table entry, here making rail congestible with a flat fare.
func TestNetwork_ModeSpecOverride(t *testing.T) {
	flat := func(_ float64) float64 { return 9.0 }
	net := buildBerlinMunich(t, core.WithModeSpec(core.ModeSpec{
		Mode:        core.Rail,
		SpeedKmh:    200,
		Congestible: true,
		Fare:        flat,
		Capacity:    50,
	}))

	assert.True(t, net.Congestible(core.Rail))

	spec, err := net.Spec(core.Rail)
	require.NoError(t, err)
	assert.Equal(t, 200.0, spec.SpeedKmh)

	for _, l := range net.Links() {
		if l.Mode != core.Rail {
			continue
		}
		assert.Equal(t, 9.0, l.Cost)
		assert.Equal(t, 50.0, l.Capacity)
		assert.InDelta(t, l.DistanceKm/200, l.FreeFlowTime, 1e-12)
	}
}

// TestMode_String covers the closed mode set's names.
func TestMode_String(t *testing.T) {
	assert.Equal(t, "car", core.Car.String())
	assert.Equal(t, "rail", core.Rail.String())
	assert.Equal(t, []core.Mode{core.Car, core.Rail}, core.Modes())
}
