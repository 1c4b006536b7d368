package keyexchange

import (
	"io"

	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
)

// minSecret is the largest value a secret may not take.
const minSecret = 2

// GenerateSecret draws a uniform value in (2, bound) from rand. Each draw
// reads bound.Words()*8 bytes and masks them to bound's bit length.
func GenerateSecret(rand io.Reader, bound bigint.Int) (bigint.Int, error) {
	secret, _, err := generateSecret(rand, bound)
	return secret, err
}

// generateSecret also reports how many draws it took.
func generateSecret(rand io.Reader, bound bigint.Int) (bigint.Int, int, error) {
	bound = bound.AsUnsigned()
	if bound.Cmp(bigint.FromUint64(bound.Words(), minSecret+1)) <= 0 {
		return bigint.Int{}, 0, errors.Errorf("keyexchange: bound %v leaves no valid secret", bound)
	}

	words := bound.Words()
	mask := bigint.New(words, false).Not().Rsh(uint(bound.Bits() - bound.BitLen()))
	floor := bigint.FromUint64(words, minSecret)
	buf := make([]byte, words*8)
	for draws := 1; ; draws++ {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return bigint.Int{}, draws, errors.Wrap(err, "keyexchange: draw secret")
		}
		v := bigint.FromBytes(words, buf).And(mask)
		if v.Cmp(floor) > 0 && v.Cmp(bound) < 0 {
			return v, draws, nil
		}
	}
}
