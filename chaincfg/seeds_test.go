package chaincfg

import (
	"math/rand"
	"net"
	"testing"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertSeeds(t *testing.T) {
	var v4 SeedSpec6
	copy(v4.Addr[:], net.ParseIP("203.0.113.7").To16())
	v4.Port = 2706
	var v6 SeedSpec6
	copy(v6.Addr[:], net.ParseIP("2001:db8::1"))
	v6.Port = 12706

	now := time.Unix(1700000000, 0)
	addrs := ConvertSeeds([]SeedSpec6{v4, v6}, now, rand.New(rand.NewSource(1)))
	require.Len(t, addrs, 2)

	assert.True(t, addrs[0].IP.Equal(net.ParseIP("203.0.113.7")))
	assert.Equal(t, uint16(2706), addrs[0].Port)
	assert.True(t, addrs[1].IP.Equal(net.ParseIP("2001:db8::1")))
	assert.Equal(t, uint16(12706), addrs[1].Port)

	for _, a := range addrs {
		assert.Equal(t, wire.SFNodeNetwork, a.Services)
		age := now.Sub(a.Timestamp)
		assert.GreaterOrEqual(t, age, oneWeek)
		assert.Less(t, age, 2*oneWeek)
	}
}

func TestFixedSeedsEmpty(t *testing.T) {
	for _, p := range allProfiles() {
		assert.Empty(t, ConvertSeeds(p.FixedSeeds, time.Now(), rand.New(rand.NewSource(0))), p.Name)
	}
}
