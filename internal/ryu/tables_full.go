//go:build !numfmt_small

package ryu

// Full tables: one 128-bit multiplier per power, about 10KiB resident.
// Build with -tags numfmt_small to trade them for on-demand products.
var (
	pow5InvSplit [pow5InvTableSize][2]uint64
	pow5Split    [pow5TableSize][2]uint64
)

func init() {
	for i := range pow5InvSplit {
		pow5InvSplit[i] = exactInvPow5(int32(i))
	}
	for i := range pow5Split {
		pow5Split[i] = exactPow5(int32(i))
	}
}

// SmallTables reports whether the on-demand table layout is compiled in.
const SmallTables = false

func computePow5(i uint32) [2]uint64 {
	return pow5Split[i]
}

func computeInvPow5(i uint32) [2]uint64 {
	return pow5InvSplit[i]
}
