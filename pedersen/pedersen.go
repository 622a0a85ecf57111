package pedersen

import (
	"github.com/f3rmion/stark/curve"
	"github.com/f3rmion/stark/felt"
)

// Hash returns the Pedersen hash of a and b.
func Hash(a, b *felt.Element) felt.Element {
	acc := shift
	accumulate(&acc, a, &tables[0], &tables[1])
	accumulate(&acc, b, &tables[2], &tables[3])
	return acc.X()
}

// accumulate adds low(x)*P_low + high(x)*P_high to acc, reading x one
// nibble at a time from the least significant end.
func accumulate(acc *curve.Point, x *felt.Element, low, high *table) {
	buf := x.Bytes()
	// buf[1:] holds the low 248 bits, buf[0] the top 4 bits.
	for i := 0; i < lowRows; i++ {
		byt := buf[len(buf)-1-i/2]
		nibble := byt & 0x0f
		if i%2 == 1 {
			nibble = byt >> 4
		}
		acc.Add(acc, &(*low)[i][nibble])
	}
	acc.Add(acc, &(*high)[0][buf[0]&0x0f])
}

// HashMany returns the Starknet array hash of xs: the running hash
// h = Hash(h, x) starting from 0, finished with Hash(h, len(xs)).
// The hash of an empty list is Hash(0, 0).
func HashMany(xs ...felt.Element) felt.Element {
	var acc felt.Element
	for i := range xs {
		acc = Hash(&acc, &xs[i])
	}
	n := felt.New(uint64(len(xs)))
	return Hash(&acc, &n)
}
