package bigint

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

func randInt(rng *rand.Rand, words int) Int {
	z := New(words, false)
	for i := range z.w {
		z.w[i] = rng.Uint64()
	}
	// Vary magnitudes so division sees short divisors too.
	if n := rng.Intn(words * wordBits); n > 0 {
		z = z.Rsh(uint(n))
	}
	return z
}

func toU256(x Int) *uint256.Int {
	u := uint256.Int{x.w[0], x.w[1], x.w[2], x.w[3]}
	return &u
}

func fromU256(u *uint256.Int) Int {
	return FromWords(u[:])
}

func toBig(x Int) *big.Int {
	b := new(big.Int).SetBytes(reverse(x.Bytes()))
	if x.IsNegative() {
		b.Sub(b, new(big.Int).Lsh(big.NewInt(1), uint(x.Bits())))
	}
	return b
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i := range b {
		out[len(b)-1-i] = b[i]
	}
	return out
}

func TestArithmeticMatchesUint256(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		x, y := randInt(rng, 4), randInt(rng, 4)
		ux, uy := toU256(x), toU256(y)

		assert.Equal(t, fromU256(new(uint256.Int).Add(ux, uy)), x.Add(y), "add")
		assert.Equal(t, fromU256(new(uint256.Int).Sub(ux, uy)), x.Sub(y), "sub")
		assert.Equal(t, fromU256(new(uint256.Int).Mul(ux, uy)), x.Mul(y), "mul")
		assert.Equal(t, fromU256(new(uint256.Int).And(ux, uy)), x.And(y), "and")
		assert.Equal(t, fromU256(new(uint256.Int).Or(ux, uy)), x.Or(y), "or")
		assert.Equal(t, fromU256(new(uint256.Int).Xor(ux, uy)), x.Xor(y), "xor")
		assert.Equal(t, ux.Cmp(uy), x.Cmp(y), "cmp")

		if !y.IsZero() {
			q, r, err := x.DivMod(y)
			require.NoError(t, err)
			assert.Equal(t, fromU256(new(uint256.Int).Div(ux, uy)), q, "div")
			assert.Equal(t, fromU256(new(uint256.Int).Mod(ux, uy)), r, "mod")
		}

		n := uint(rng.Intn(300))
		assert.Equal(t, fromU256(new(uint256.Int).Lsh(ux, n)), x.Lsh(n), "lsh %d", n)
		assert.Equal(t, fromU256(new(uint256.Int).Rsh(ux, n)), x.Rsh(n), "rsh %d", n)
	}
}

func TestPowMatchesUint256(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 50; i++ {
		x, e := randInt(rng, 4), randInt(rng, 4)
		want := new(uint256.Int).Exp(toU256(x), toU256(e))
		assert.Equal(t, fromU256(want), x.Pow(e))
	}
}

func TestMul64(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		a, b := rng.Uint64(), rng.Uint64()
		hi, lo := mul64(a, b)
		want := new(big.Int).Mul(new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
		got := new(big.Int).Lsh(new(big.Int).SetUint64(hi), 64)
		got.Or(got, new(big.Int).SetUint64(lo))
		require.Zero(t, want.Cmp(got), "%x * %x", a, b)
	}
	hi, lo := mul64(^uint64(0), ^uint64(0))
	assert.Equal(t, ^uint64(0)-1, hi)
	assert.Equal(t, uint64(1), lo)
}

func TestWrapAround(t *testing.T) {
	max := New(2, false).Not()
	assert.True(t, max.Add(FromUint64(2, 1)).IsZero())
	assert.True(t, New(2, false).Sub(FromUint64(2, 1)).Equal(max))
}

func TestDivisionByZero(t *testing.T) {
	x := FromUint64(4, 42)
	_, _, err := x.DivMod(New(4, false))
	assert.True(t, errors.Is(err, cryptcore.ErrDivisionByZero))

	_, err = FromInt64(4, -3).Mod(FromInt64(4, 0))
	assert.True(t, errors.Is(err, cryptcore.ErrDivisionByZero))
}

func TestSignedDivision(t *testing.T) {
	cases := []struct {
		x, y, q, r int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -3, -1},
		{7, -2, -3, 1},
		{-7, -2, 3, -1},
		{-6, 3, -2, 0},
	}
	for _, c := range cases {
		q, r, err := FromInt64(3, c.x).DivMod(FromInt64(3, c.y))
		require.NoError(t, err)
		assert.Equal(t, c.q, q.Int64(), "%d / %d", c.x, c.y)
		assert.Equal(t, c.r, r.Int64(), "%d %% %d", c.x, c.y)
		assert.Equal(t, q.IsNegative(), c.q < 0)
	}
}

func TestSignedMatchesBig(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	mod := new(big.Int).Lsh(big.NewInt(1), 192)
	half := new(big.Int).Rsh(mod, 1)
	norm := func(b *big.Int) *big.Int {
		b.Mod(b, mod)
		if b.Cmp(half) >= 0 {
			b.Sub(b, mod)
		}
		return b
	}
	for i := 0; i < 300; i++ {
		x, y := randInt(rng, 3).AsSigned(), randInt(rng, 3).AsSigned()
		if rng.Intn(2) == 0 {
			x = x.Neg()
		}
		if rng.Intn(2) == 0 {
			y = y.Neg()
		}
		bx, by := toBig(x), toBig(y)

		assert.Zero(t, norm(new(big.Int).Add(bx, by)).Cmp(toBig(x.Add(y))), "add")
		assert.Zero(t, norm(new(big.Int).Mul(bx, by)).Cmp(toBig(x.Mul(y))), "mul")
		assert.Equal(t, bx.Cmp(by), x.Cmp(y), "cmp %s %s", bx, by)

		if by.Sign() != 0 {
			q, r, err := x.DivMod(y)
			require.NoError(t, err)
			wq, wr := new(big.Int).QuoRem(bx, by, new(big.Int))
			assert.Zero(t, norm(wq).Cmp(toBig(q)), "quo %s / %s", bx, by)
			assert.Zero(t, wr.Cmp(toBig(r)), "rem %s / %s", bx, by)
		}

		n := uint(rng.Intn(200))
		assert.Zero(t, new(big.Int).Rsh(bx, n).Cmp(toBig(x.Rsh(n))), "rsh %d", n)
	}
}

func TestRshSignExtends(t *testing.T) {
	x := FromInt64(2, -8)
	assert.Equal(t, int64(-2), x.Rsh(2).Int64())
	assert.True(t, x.Rsh(1000).Not().IsZero())
	assert.True(t, x.AsUnsigned().Rsh(1000).IsZero())
}

func TestResize(t *testing.T) {
	neg := FromInt64(1, -1).Resize(3)
	assert.Equal(t, -1, neg.Sign())
	assert.Equal(t, int64(-1), neg.Int64())
	assert.Equal(t, 192, neg.BitLen())

	wide := New(3, false).Not()
	assert.Equal(t, []uint64{^uint64(0)}, wide.Resize(1).w)

	// Mixed widths: the right operand is brought to the receiver's width.
	assert.Equal(t, uint64(5), FromUint64(4, 2).Add(FromUint64(1, 3)).Uint64())
	assert.Equal(t, int64(1), FromInt64(4, 2).Add(FromInt64(1, -1)).Int64())
}

func TestBitHelpers(t *testing.T) {
	assert.Equal(t, 0, New(4, false).BitLen())
	assert.Equal(t, 1, FromUint64(4, 1).BitLen())
	assert.Equal(t, 65, FromUint64(4, 1).Lsh(64).BitLen())

	x := New(2, false).SetBit(100, true)
	assert.True(t, x.Bit(100))
	assert.False(t, x.Bit(99))
	assert.False(t, x.Bit(500))
	assert.True(t, x.SetBit(100, false).IsZero())
	assert.False(t, x.IsZero(), "SetBit must not modify its receiver")
}

func TestImmutability(t *testing.T) {
	x := FromUint64(2, 10)
	y := FromUint64(2, 3)
	_ = x.Add(y)
	_ = x.Mul(y)
	_, _, _ = x.DivMod(y)
	_ = x.Neg()
	_ = x.Lsh(5)
	assert.Equal(t, uint64(10), x.Uint64())
	assert.Equal(t, uint64(3), y.Uint64())
}

func TestSqrt(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		x := randInt(rng, 4)
		want := new(big.Int).Sqrt(toBig(x))
		assert.Zero(t, want.Cmp(toBig(x.Sqrt())), "sqrt %s", toBig(x))
	}
	max := New(4, false).Not()
	assert.Zero(t, new(big.Int).Sqrt(toBig(max)).Cmp(toBig(max.Sqrt())))
	assert.True(t, FromInt64(2, -9).Sqrt().IsZero())
	assert.Equal(t, uint64(1), FromUint64(1, 3).Sqrt().Uint64())
}

func TestBytesRoundTrip(t *testing.T) {
	x := MustParse(4, false, "0x0102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20", 16)
	b := x.Bytes()
	require.Len(t, b, 32)
	assert.Equal(t, byte(0x20), b[0])
	assert.Equal(t, byte(0x01), b[31])
	assert.Equal(t, x, FromBytes(4, b))

	short := FromBytes(2, []byte{1, 2, 3})
	assert.Equal(t, uint64(0x030201), short.Uint64())

	long := FromBytes(1, b)
	assert.Equal(t, x.w[0], long.Uint64())
}
