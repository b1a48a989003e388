package subsidy

import (
	"math"
	"testing"

	"github.com/sat20-labs/chainparams/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tenths(n uint64) uint64 {
	return common.CoinTenths(n)
}

func f2BaseTable() *Table {
	return NewTable(
		Point{0, tenths(38)},
		Point{20e9, tenths(47)},
		Point{30e9, tenths(66)},
		Point{50e9, tenths(94)},
		Point{80e9, tenths(131)},
		Point{130e9, tenths(177)},
		Point{210e9, tenths(233)},
		Point{340e9, tenths(298)},
		Point{550e9, tenths(373)},
		Point{890e9, tenths(456)},
		Point{1440e9, tenths(550)},
		Point{2330e9, tenths(652)},
		Point{3770e9, tenths(764)},
		Point{6100e9, tenths(885)},
		Point{9870e9, tenths(1015)},
	)
}

var f2Decay = DecayParams{
	StartHeight:    750,
	IntervalBlocks: 43200,
	Steps:          23,
	BasisPoints:    694,
}

func rewardsInTenths(t *Table) []uint64 {
	var ret []uint64
	for _, p := range t.Points() {
		ret = append(ret, p.Reward/common.TENTH_COIN)
	}
	return ret
}

func TestNewTableRejectsBadInput(t *testing.T) {
	assert.Panics(t, func() { NewTable() })
	assert.Panics(t, func() { NewTable(Point{10, 1}, Point{5, 2}) })
	assert.Panics(t, func() { NewTable(Point{10, 1}, Point{10, 2}) })
	assert.NotPanics(t, func() { NewTable(Point{0, 1}) })
}

func TestValueAtOrBelow(t *testing.T) {
	table := f2BaseTable()

	assert.Equal(t, tenths(38), table.ValueAtOrBelow(0))
	assert.Equal(t, tenths(47), table.ValueAtOrBelow(25e9))
	assert.Equal(t, tenths(38), table.ValueAtOrBelow(20e9-1))
	assert.Equal(t, tenths(47), table.ValueAtOrBelow(20e9))
	assert.Equal(t, tenths(66), table.ValueAtOrBelow(30e9))
	assert.Equal(t, tenths(1015), table.ValueAtOrBelow(math.MaxUint64))
}

func TestValueBelowFirstLevel(t *testing.T) {
	table := NewTable(Point{100, 7}, Point{200, 9})

	assert.Equal(t, uint64(7), table.ValueAtOrBelow(0))
	assert.Equal(t, uint64(7), table.ValueAtOrBelow(99))
	assert.Equal(t, uint64(7), table.ValueAtOrBelow(199))
	assert.Equal(t, uint64(9), table.ValueAtOrBelow(200))
}

func TestTablePointsAndEqual(t *testing.T) {
	a := NewTable(Point{0, 1}, Point{5, 2})
	b := NewTable(Point{0, 1}, Point{5, 2})
	c := NewTable(Point{0, 1}, Point{5, 3})

	assert.Equal(t, []Point{{0, 1}, {5, 2}}, a.Points())
	assert.Equal(t, 2, a.Len())
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(NewTable(Point{0, 1})))
	assert.False(t, a.Equal(nil))
}

func TestDecayRewardFirstStep(t *testing.T) {
	// 3.8 * 0.9306 = 3.53628, rounded up to 3.6
	assert.Equal(t, tenths(36), decayReward(tenths(38), 694))
}

func TestDecayRewardSmallValues(t *testing.T) {
	// one tenth stays put, the anti-stall rule only applies above it
	assert.Equal(t, common.TENTH_COIN, decayReward(common.TENTH_COIN, 694))
	// 0.2 * 0.9306 rounds up to 0.2, then the anti-stall rule drops it to 0.1
	assert.Equal(t, tenths(1), decayReward(tenths(2), 694))
	assert.Equal(t, common.TENTH_COIN, decayReward(common.TENTH_COIN+1, 694))
	assert.Equal(t, uint64(0), decayReward(1, 694))
	assert.Equal(t, uint64(0), decayReward(0, 694))
}

func TestDecayRewardNoDecay(t *testing.T) {
	// with no decay the anti-stall rule alone still forces a step down
	assert.Equal(t, tenths(37), decayReward(tenths(38), 0))
	assert.Equal(t, common.TENTH_COIN, decayReward(common.TENTH_COIN, 0))
}

func TestScheduleSteps(t *testing.T) {
	s := NewSchedule(f2BaseTable(), f2Decay)
	require.Equal(t, 24, s.Len())

	assert.True(t, s.At(0).Equal(f2BaseTable()))
	assert.Equal(t,
		[]uint64{36, 44, 62, 88, 122, 165, 217, 278, 348, 425, 512, 607, 711, 824, 945},
		rewardsInTenths(s.At(1)))
	assert.Equal(t,
		[]uint64{34, 41, 58, 82, 114, 154, 202, 259, 324, 396, 477, 565, 662, 767, 880},
		rewardsInTenths(s.At(2)))
	assert.Equal(t,
		[]uint64{10, 13, 19, 24, 31, 40, 50, 64, 77, 94, 111, 131, 152, 175, 200},
		rewardsInTenths(s.At(23)))
	assert.Same(t, s.At(23), s.At(24))
	assert.Same(t, s.At(23), s.At(math.MaxUint32))
}

func TestScheduleNonIncreasing(t *testing.T) {
	s := NewSchedule(f2BaseTable(), f2Decay)

	for i := uint32(1); i < uint32(s.Len()); i++ {
		prev, cur := s.At(i-1).Points(), s.At(i).Points()
		require.Equal(t, len(prev), len(cur))
		for j := range cur {
			assert.Equal(t, prev[j].Level, cur[j].Level, "step %d point %d", i, j)
			assert.Less(t, cur[j].Reward, prev[j].Reward, "step %d point %d", i, j)
		}
	}
}

func TestScheduleDoesNotTouchBase(t *testing.T) {
	base := f2BaseTable()
	NewSchedule(base, f2Decay)
	assert.True(t, base.Equal(f2BaseTable()))
}

func TestScheduleRejectsBadParams(t *testing.T) {
	bad := f2Decay
	bad.BasisPoints = 10000
	assert.Panics(t, func() { NewSchedule(f2BaseTable(), bad) })

	bad = f2Decay
	bad.IntervalBlocks = 0
	assert.Panics(t, func() { NewSchedule(f2BaseTable(), bad) })

	bad = f2Decay
	bad.StartHeight = -1
	assert.Panics(t, func() { NewSchedule(f2BaseTable(), bad) })

	assert.Panics(t, func() { NewSchedule(nil, f2Decay) })
}

func TestScheduleIndex(t *testing.T) {
	s := NewSchedule(f2BaseTable(), f2Decay)

	assert.Equal(t, uint32(0), s.Index(0))
	assert.Equal(t, uint32(0), s.Index(750))
	assert.Equal(t, uint32(0), s.Index(750+43200-1))
	assert.Equal(t, uint32(1), s.Index(750+43200))
	assert.Equal(t, uint32(23), s.Index(750+23*43200))
	assert.Equal(t, uint32(23), s.Index(math.MaxInt32))
}

const (
	testHEXHashTime = 1554465600
	testF2Time      = 1870020488
)

func testResolver() *Resolver {
	return NewResolver(Rules{
		Legacy:      NewTable(Point{0, 5 * common.COIN}),
		HEXHash:     NewTable(Point{0, 4 * common.COIN}),
		F2:          NewSchedule(f2BaseTable(), f2Decay),
		HEXHashTime: testHEXHashTime,
		F2Time:      testF2Time,
	})
}

func TestSelectTableByTime(t *testing.T) {
	r := testResolver()

	assert.Same(t, r.Legacy(), r.SelectTable(0, 1000))
	assert.Same(t, r.Legacy(), r.SelectTable(testHEXHashTime, 1000))
	assert.Same(t, r.HEXHash(), r.SelectTable(testHEXHashTime+1, 1000))
	assert.Same(t, r.HEXHash(), r.SelectTable(testF2Time, 1000))
	assert.Same(t, r.Schedule().At(0), r.SelectTable(testF2Time+1, 1000))
}

func TestSelectTableByHeight(t *testing.T) {
	r := testResolver()
	after := uint32(testF2Time + 1)

	assert.Same(t, r.HEXHash(), r.SelectTable(after, 0))
	assert.Same(t, r.HEXHash(), r.SelectTable(after, 749))
	assert.Same(t, r.Schedule().At(0), r.SelectTable(after, 750))
	assert.Same(t, r.Schedule().At(1), r.SelectTable(after, 750+43200))
	assert.Same(t, r.Schedule().At(23), r.SelectTable(after, 750+100*43200))
	assert.Same(t, r.Schedule().At(23), r.SelectTable(after, math.MaxInt32))
}

func TestResolverValue(t *testing.T) {
	r := testResolver()
	after := uint32(testF2Time + 1)

	assert.Equal(t, 5*common.COIN, r.Value(25e9, testHEXHashTime, 10))
	assert.Equal(t, 4*common.COIN, r.Value(25e9, testHEXHashTime+1, 10))
	assert.Equal(t, tenths(38), r.Value(0, after, 800))
	assert.Equal(t, tenths(47), r.Value(25e9, after, 800))
	assert.Equal(t, tenths(44), r.Value(25e9, after, 750+43200))

	for i := 0; i < 3; i++ {
		assert.Equal(t, tenths(44), r.Value(25e9, after, 750+43200))
	}
}

func TestResolverWithLegacy(t *testing.T) {
	r := testResolver()
	legacy := NewTable(Point{0, common.COIN})
	r2 := r.WithLegacy(legacy)

	assert.Same(t, legacy, r2.Legacy())
	assert.Same(t, r.HEXHash(), r2.HEXHash())
	assert.Same(t, r.Schedule(), r2.Schedule())
	assert.Equal(t, 5*common.COIN, r.Value(0, 0, 0))
	assert.Equal(t, common.COIN, r2.Value(0, 0, 0))
}

func TestNewResolverRejectsBadRules(t *testing.T) {
	assert.Panics(t, func() { NewResolver(Rules{}) })
	assert.Panics(t, func() {
		NewResolver(Rules{
			Legacy:      NewTable(Point{0, 1}),
			HEXHash:     NewTable(Point{0, 1}),
			F2:          NewSchedule(NewTable(Point{0, 1}), f2Decay),
			HEXHashTime: 20,
			F2Time:      10,
		})
	})
}
