// Package subsidy implements the VIRIDI block reward rules: issuance-level
// switch point tables, the F2 decay schedule derived from them and the
// time and height gated selection between the eras.
package subsidy

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/sat20-labs/chainparams/common"
)

var log = common.GetLoggerEntry("subsidy")

// Point is one switch point: from Level (coins already issued, in base units)
// onwards the block reward is Reward.
type Point struct {
	Level  uint64
	Reward uint64
}

// Table is an ordered set of switch points keyed by issuance level. It is
// read-only once built.
type Table struct {
	points *treemap.Map
}

// NewTable builds a table from points given in strictly increasing level
// order. An empty or unordered list is a broken build and aborts.
func NewTable(points ...Point) *Table {
	if len(points) == 0 {
		log.Panicf("NewTable-> empty subsidy switch point table")
	}
	m := treemap.NewWith(utils.UInt64Comparator)
	for i, p := range points {
		if i > 0 && p.Level <= points[i-1].Level {
			log.Panicf("NewTable-> switch point %d level %d not above previous level %d",
				i, p.Level, points[i-1].Level)
		}
		m.Put(p.Level, p.Reward)
	}
	return &Table{points: m}
}

// ValueAtOrBelow returns the reward of the greatest level not above level.
// Levels below the first switch point fall into the first bracket.
func (t *Table) ValueAtOrBelow(level uint64) uint64 {
	_, reward := t.points.Floor(level)
	if reward == nil {
		_, reward = t.points.Min()
	}
	return reward.(uint64)
}

func (t *Table) Len() int {
	return t.points.Size()
}

// Points returns a copy of the switch points in level order.
func (t *Table) Points() []Point {
	ret := make([]Point, 0, t.points.Size())
	it := t.points.Iterator()
	for it.Next() {
		ret = append(ret, Point{Level: it.Key().(uint64), Reward: it.Value().(uint64)})
	}
	return ret
}

func (t *Table) Equal(other *Table) bool {
	if other == nil || t.Len() != other.Len() {
		return false
	}
	a, b := t.Points(), other.Points()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// mapRewards returns a new table with the same levels and every reward
// replaced by fn(reward).
func (t *Table) mapRewards(fn func(uint64) uint64) *Table {
	m := treemap.NewWith(utils.UInt64Comparator)
	it := t.points.Iterator()
	for it.Next() {
		m.Put(it.Key(), fn(it.Value().(uint64)))
	}
	return &Table{points: m}
}
