package chaincfg

import (
	"math/rand"
	"net"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// SeedSpec6 is a fixed seed node: an IPv6 (or IPv4-mapped) address and port.
type SeedSpec6 struct {
	Addr [16]byte
	Port uint16
}

// The generated seed node lists are empty for every network.
var (
	mainFixedSeeds []SeedSpec6
	testFixedSeeds []SeedSpec6
)

const oneWeek = 7 * 24 * time.Hour

// ConvertSeeds turns fixed seeds into peer addresses. Each address gets a last
// seen time between one and two weeks before now so that addresses learned
// from peers are preferred over them.
func ConvertSeeds(specs []SeedSpec6, now time.Time, rng *rand.Rand) []*wire.NetAddress {
	ret := make([]*wire.NetAddress, 0, len(specs))
	for _, spec := range specs {
		ip := make(net.IP, net.IPv6len)
		copy(ip, spec.Addr[:])

		age := oneWeek + time.Duration(rng.Int63n(int64(oneWeek/time.Second)))*time.Second
		ret = append(ret, wire.NewNetAddressTimestamp(now.Add(-age), wire.SFNodeNetwork, ip, spec.Port))
	}
	return ret
}
