package curves

import (
	"github.com/smallyu/go-cryptcore/internal/crypto/bigint"
	"github.com/smallyu/go-cryptcore/internal/crypto/modring"
)

// curveSpec holds the SEC 2 constants of a curve in hex.
type curveSpec struct {
	name   string
	words  int
	p, n   string
	a, b   string
	gx, gy string
}

var specs = []curveSpec{
	{
		name: "secp112r1", words: 2,
		p:  "DB7C2ABF62E35E668076BEAD208B",
		n:  "DB7C2ABF62E35E7628DFAC6561C5",
		a:  "DB7C2ABF62E35E668076BEAD2088",
		b:  "659EF8BA043916EEDE8911702B22",
		gx: "09487239995A5EE76B55F9C2F098",
		gy: "A89CE5AF8724C0A23E0E0FF77500",
	},
	{
		name: "secp112r2", words: 2,
		p:  "DB7C2ABF62E35E668076BEAD208B",
		n:  "36DF0AAFD8B8D7597CA10520D04B",
		a:  "6127C24C05F38A0AAAF65C0EF02C",
		b:  "51DEF1815DB5ED74FCC34C85D709",
		gx: "4BA30AB5E892B4E1649DD0928643",
		gy: "ADCD46F5882E3747DEF36E956E97",
	},
	{
		name: "secp128r1", words: 2,
		p:  "FFFFFFFDFFFFFFFFFFFFFFFFFFFFFFFF",
		n:  "FFFFFFFE0000000075A30D1B9038A115",
		a:  "FFFFFFFDFFFFFFFFFFFFFFFFFFFFFFFC",
		b:  "E87579C11079F43DD824993C2CEE5ED3",
		gx: "161FF7528B899B2D0C28607CA52C5B86",
		gy: "CF5AC8395BAFEB13C02DA292DDED7A83",
	},
	{
		name: "secp128r2", words: 2,
		p:  "FFFFFFFDFFFFFFFFFFFFFFFFFFFFFFFF",
		n:  "3FFFFFFF7FFFFFFFBE0024720613B5A3",
		a:  "D6031998D1B3BBFEBF59CC9BBFF9AEE1",
		b:  "5EEEFCA380D02919DC2C6558BB6D8A5D",
		gx: "7B6AA5D85E572983E6FB32A7CDEBC140",
		gy: "27B6916A894D3AEE7106FE805FC34B44",
	},
	{
		name: "secp160k1", words: 3,
		p:  "00FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFAC73",
		n:  "0100000000000000000001B8FA16DFAB9ACA16B6B3",
		a:  "0",
		b:  "7",
		gx: "003B4C382CE37AA192A4019E763036F4F5DD4D7EBB",
		gy: "00938CF935318FDCED6BC28286531733C3F03C4FEE",
	},
	{
		name: "secp160r1", words: 3,
		p:  "00FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF7FFFFFFF",
		n:  "0100000000000000000001F4C8F927AED3CA752257",
		a:  "00FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF7FFFFFFC",
		b:  "001C97BEFC54BD7A8B65ACF89F81D4D4ADC565FA45",
		gx: "004A96B5688EF573284664698968C38BB913CBFC82",
		gy: "0023A628553168947D59DCC912042351377AC5FB32",
	},
	{
		name: "secp160r2", words: 3,
		p:  "00FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFAC73",
		n:  "0100000000000000000000351EE786A818F3A1A16B",
		a:  "00FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFAC70",
		b:  "00B4E134D3FB59EB8BAB57274904664D5AF50388BA",
		gx: "0052DCB034293A117E1F4FF11B30F7199D3144CE6D",
		gy: "00FEAFFEF2E331F296E071FA0DF9982CFEA7D43F2E",
	},
	{
		name: "secp192k1", words: 3,
		p:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFEE37",
		n:  "FFFFFFFFFFFFFFFFFFFFFFFE26F2FC170F69466A74DEFD8D",
		a:  "0",
		b:  "3",
		gx: "DB4FF10EC057E9AE26B07D0280B7F4341DA5D1B1EAE06C7D",
		gy: "9B2F2F6D9C5628A7844163D015BE86344082AA88D95E2F9D",
	},
	{
		name: "secp192r1", words: 3,
		p:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFF",
		n:  "FFFFFFFFFFFFFFFFFFFFFFFF99DEF836146BC9B1B4D22831",
		a:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFC",
		b:  "64210519E59C80E70FA7E9AB72243049FEB8DEECC146B9B1",
		gx: "188DA80EB03090F67CBF20EB43A18800F4FF0AFD82FF1012",
		gy: "07192B95FFC8DA78631011ED6B24CDD573F977A11E794811",
	},
	{
		name: "secp224k1", words: 4,
		p:  "00FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFE56D",
		n:  "010000000000000000000000000001DCE8D2EC6184CAF0A971769FB1F7",
		a:  "0",
		b:  "5",
		gx: "00A1455B334DF099DF30FC28A169A467E9E47075A90F7E650EB6B7A45C",
		gy: "007E089FED7FBA344282CAFBD6F7E319F7C0B0BD59E2CA4BDB556D61A5",
	},
	{
		name: "secp224r1", words: 4,
		p:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF000000000000000000000001",
		n:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFF16A2E0B8F03E13DD29455C5C2A3D",
		a:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFFFFFFFFFFFFFFFFFE",
		b:  "B4050A850C04B3ABF54132565044B0B7D7BFD8BA270B39432355FFB4",
		gx: "B70E0CBD6BB4BF7F321390B94A03C1D356C21122343280D6115C1D21",
		gy: "BD376388B5F723FB4C22DFE6CD4375A05A07476444D5819985007E34",
	},
	{
		name: "secp256k1", words: 4,
		p:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F",
		n:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141",
		a:  "0",
		b:  "7",
		gx: "79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798",
		gy: "483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8",
	},
	{
		name: "secp256r1", words: 4,
		p:  "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
		n:  "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551",
		a:  "ffffffff00000001000000000000000000000000fffffffffffffffffffffffc",
		b:  "5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b",
		gx: "6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
		gy: "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5",
	},
	{
		name: "secp384r1", words: 6,
		p:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFF0000000000000000FFFFFFFF",
		n:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC7634D81F4372DDF581A0DB248B0A77AECEC196ACCC52973",
		a:  "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFFFF0000000000000000FFFFFFFC",
		b:  "B3312FA7E23EE7E4988E056BE3F82D19181D9C6EFE8141120314088F5013875AC656398D8A2ED19D2A85C8EDD3EC2AEF",
		gx: "AA87CA22BE8B05378EB1C71EF320AD746E1D3B628BA79B9859F741E082542A385502F25DBF55296C3A545E3872760AB7",
		gy: "3617DE4A96262C6F5D9E98BF9292DC29F8F41DBD289A147CE9DA3113B5F0B8C00A60B1CE1D7E819D7A431D7C90EA0E5F",
	},
	{
		name: "secp521r1", words: 9,
		p:  "01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFF",
		n:  "01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFA51868783BF2F966B7FCC0148F709A5D03BB5C9B8899C47AEBB6FB71E91386409",
		a:  "01FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFC",
		b:  "0051953EB9618E1C9A1F929A21A0B68540EEA2DA725B99B315F3B8B489918EF109E156193951EC7E937B1652C0BD3BB1BF073573DF883D2C34F1EF451FD46B503F00",
		gx: "00C6858E06B70404E9CD9E3ECB662395B4429C648139053FB521F828AF606B4D3DBAA14B5E77EFE75928FE1DC127A2FFA8DE3348B3C1856A429BF97E7E31C2E5BD66",
		gy: "011839296A789A3BC0045C8A5FB42C7D1BD998F54449579B446817AFBD17273E662C97EE72995EF42640C550B9013FAD0761353C7086A272C24088BE94769FD16650",
	},
}

func init() {
	for _, s := range specs {
		register(mustCurve(s))
	}
}

// mustCurve builds a curve from constants and panics if they do not parse.
func mustCurve(s curveSpec) *Curve {
	field := modring.MustNew(bigint.MustParse(s.words, false, s.p, 16))
	order := modring.MustNew(bigint.MustParse(s.words, false, s.n, 16))
	params, err := NewParams(field.MustParse(s.a, 16), field.MustParse(s.b, 16))
	if err != nil {
		panic(err)
	}
	g, err := params.Point(field.MustParse(s.gx, 16), field.MustParse(s.gy, 16))
	if err != nil {
		panic(err)
	}
	return &Curve{
		Name:   s.name,
		Words:  s.words,
		Field:  field,
		Order:  order,
		Params: params,
		G:      g,
	}
}
