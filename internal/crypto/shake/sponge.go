package shake

import "io"

// Sponge is a streaming SHAKE256 instance. Absorb with Write, then squeeze
// any number of bytes with Read. It is not safe for concurrent use.
type Sponge struct {
	st        state
	buf       [rate]byte
	absorbed  int
	squeezing bool
	readIdx   int
}

// New returns an empty sponge.
func New() *Sponge { return &Sponge{} }

// Reset returns the sponge to its initial state.
func (s *Sponge) Reset() {
	*s = Sponge{}
}

// Clone returns an independent copy of the sponge.
func (s *Sponge) Clone() *Sponge {
	c := *s
	return &c
}

// Write absorbs data. It panics if called after Read.
func (s *Sponge) Write(p []byte) (int, error) {
	if s.squeezing {
		panic("shake: Write after Read")
	}
	n := len(p)
	for len(p) > 0 {
		x := copy(s.buf[s.absorbed:], p)
		s.absorbed += x
		p = p[x:]
		if s.absorbed == rate {
			s.st.xorIn(s.buf[:])
			s.st.permute()
			s.absorbed = 0
		}
	}
	return n, nil
}

// Read squeezes len(out) bytes. The first call pads the input and switches
// the sponge to squeezing. It never returns an error.
func (s *Sponge) Read(out []byte) (int, error) {
	if !s.squeezing {
		s.padAndSqueeze()
	}
	n := len(out)
	for len(out) > 0 {
		if s.readIdx == rate {
			s.st.permute()
			s.readIdx = 0
		}
		k := rate - s.readIdx
		if k > len(out) {
			k = len(out)
		}
		for i := 0; i < k; i++ {
			out[i] = s.st.byteAt(s.readIdx + i)
		}
		s.readIdx += k
		out = out[k:]
	}
	return n, nil
}

// Sum appends n bytes of output to b without disturbing the sponge. A
// negative n appends nothing.
func (s *Sponge) Sum(b []byte, n int) []byte {
	if n <= 0 {
		return b
	}
	c := s.Clone()
	out := make([]byte, n)
	c.Read(out)
	return append(b, out...)
}

func (s *Sponge) padAndSqueeze() {
	s.st.xorIn(s.buf[:s.absorbed])
	s.st.xorByte(s.absorbed, dsbyte)
	s.st.xorByte(rate-1, 0x80)
	s.st.permute()
	s.squeezing = true
	s.readIdx = 0
}

// HashN returns n bytes of SHAKE256(msg). A negative n returns an empty
// slice.
func HashN(msg []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	var s Sponge
	s.Write(msg)
	out := make([]byte, n)
	s.Read(out)
	return out
}

// Hash256 returns the 32-byte SHAKE256 digest of msg.
func Hash256(msg []byte) []byte {
	return HashN(msg, 32)
}

// NewReader returns an endless deterministic byte stream SHAKE256(seed).
func NewReader(seed []byte) io.Reader {
	s := New()
	s.Write(seed)
	return s
}

// Hasher is the package's cryptcore.Hasher.
type Hasher struct{}

// Hash256 returns the 32-byte digest of msg.
func (Hasher) Hash256(msg []byte) []byte { return Hash256(msg) }

// HashN returns n bytes of output for msg.
func (Hasher) HashN(msg []byte, n int) []byte { return HashN(msg, n) }
