// Package shake implements the Keccak-f[1600] permutation and the SHAKE256
// extendable-output function built on it.
package shake

import "math/bits"

const (
	rounds = 24
	// rate is the SHAKE256 block size: 1600 - 2*256 bits.
	rate = 136
	// dsbyte is the SHAKE domain separator with the first pad bit.
	dsbyte = 0x1f
)

// state is the 5x5 lane array; lane (x, y) lives at index x + 5y.
type state [25]uint64

func (a *state) lane(x, y int) uint64 { return a[x+5*y] }

func (a *state) setLane(x, y int, v uint64) { a[x+5*y] = v }

// bit returns bit z of lane (x, y).
func (a *state) bit(x, y, z int) uint64 { return a.lane(x, y) >> uint(z) & 1 }

var (
	roundConstants [rounds]uint64
	rotations      [5][5]int
)

func init() {
	for ir := 0; ir < rounds; ir++ {
		var c uint64
		for j := 0; j <= 6; j++ {
			c |= rc(j+7*ir) << (1<<uint(j) - 1)
		}
		roundConstants[ir] = c
	}

	x, y := 1, 0
	for t := 0; t < 24; t++ {
		rotations[x][y] = (t + 1) * (t + 2) / 2 % 64
		x, y = y, (2*x+3*y)%5
	}
}

// rc is the output bit of the degree-8 LFSR x^8 + x^6 + x^5 + x^4 + 1
// after t steps.
func rc(t int) uint64 {
	if t%255 == 0 {
		return 1
	}
	r := uint(1)
	for i := 1; i <= t%255; i++ {
		r <<= 1
		if r&0x100 != 0 {
			r ^= 0x171
		}
	}
	return uint64(r & 1)
}

// permute applies the 24 rounds of Keccak-f[1600].
func (a *state) permute() {
	var c, d [5]uint64
	var b state
	for ir := 0; ir < rounds; ir++ {
		// θ
		for x := 0; x < 5; x++ {
			c[x] = a.lane(x, 0) ^ a.lane(x, 1) ^ a.lane(x, 2) ^ a.lane(x, 3) ^ a.lane(x, 4)
		}
		for x := 0; x < 5; x++ {
			d[x] = c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		}
		for i := range a {
			a[i] ^= d[i%5]
		}

		// ρ and π
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				b.setLane(y, (2*x+3*y)%5, bits.RotateLeft64(a.lane(x, y), rotations[x][y]))
			}
		}

		// χ
		for x := 0; x < 5; x++ {
			for y := 0; y < 5; y++ {
				a.setLane(x, y, b.lane(x, y)^(^b.lane((x+1)%5, y)&b.lane((x+2)%5, y)))
			}
		}

		// ι
		a[0] ^= roundConstants[ir]
	}
}

func (a *state) xorByte(i int, v byte) {
	a[i/8] ^= uint64(v) << (8 * uint(i%8))
}

func (a *state) byteAt(i int) byte {
	return byte(a[i/8] >> (8 * uint(i%8)))
}

func (a *state) xorIn(data []byte) {
	for i, v := range data {
		a.xorByte(i, v)
	}
}
