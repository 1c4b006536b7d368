package bigint

// Cmp returns -1, 0 or +1 comparing x with y. Words are compared from the
// most significant end. For signed values a negative operand is smaller
// than any non-negative one; equal signs compare the raw bits.
func (x Int) Cmp(y Int) int {
	yv := Int{w: x.fit(y), signed: x.signed}
	if x.signed {
		xn, yn := x.IsNegative(), yv.IsNegative()
		switch {
		case xn && !yn:
			return -1
		case !xn && yn:
			return 1
		}
	}
	return cmpWords(x.w, yv.w)
}

// Equal reports whether x and y hold the same value at x's width.
func (x Int) Equal(y Int) bool {
	return cmpWords(x.w, x.fit(y)) == 0
}

// Lsh returns x << n. Shifting by the full width or more yields zero.
func (x Int) Lsh(n uint) Int {
	z := New(len(x.w), x.signed)
	ws, bs := int(n/wordBits), n%wordBits
	if ws >= len(x.w) {
		return z
	}
	for i := len(x.w) - 1; i >= ws; i-- {
		z.w[i] = x.w[i-ws] << bs
		if bs > 0 && i-ws-1 >= 0 {
			z.w[i] |= x.w[i-ws-1] >> (wordBits - bs)
		}
	}
	return z
}

// Rsh returns x >> n. Signed values shift arithmetically, copying the sign
// bit into the vacated positions; unsigned values shift in zeros.
func (x Int) Rsh(n uint) Int {
	var fill uint64
	if x.IsNegative() {
		fill = ^uint64(0)
	}
	z := New(len(x.w), x.signed)
	ws, bs := int(n/wordBits), n%wordBits
	if ws >= len(x.w) {
		for i := range z.w {
			z.w[i] = fill
		}
		return z
	}
	word := func(i int) uint64 {
		if i >= len(x.w) {
			return fill
		}
		return x.w[i]
	}
	for i := range z.w {
		z.w[i] = word(i + ws) >> bs
		if bs > 0 {
			z.w[i] |= word(i+ws+1) << (wordBits - bs)
		}
	}
	return z
}

// Not returns the bitwise complement of x.
func (x Int) Not() Int {
	z := New(len(x.w), x.signed)
	for i, w := range x.w {
		z.w[i] = ^w
	}
	return z
}

// And returns x & y.
func (x Int) And(y Int) Int {
	return x.bitwise(y, func(a, b uint64) uint64 { return a & b })
}

// Or returns x | y.
func (x Int) Or(y Int) Int {
	return x.bitwise(y, func(a, b uint64) uint64 { return a | b })
}

// Xor returns x ^ y.
func (x Int) Xor(y Int) Int {
	return x.bitwise(y, func(a, b uint64) uint64 { return a ^ b })
}

func (x Int) bitwise(y Int, op func(a, b uint64) uint64) Int {
	z := New(len(x.w), x.signed)
	yw := x.fit(y)
	for i := range z.w {
		z.w[i] = op(x.w[i], yw[i])
	}
	return z
}
