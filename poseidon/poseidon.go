package poseidon

import "github.com/f3rmion/stark/felt"

// Permute applies the Hades permutation to state in place.
func Permute(state *[3]felt.Element) {
	r := 0
	for ; r < fullRounds/2; r++ {
		addConstants(state, r)
		for i := range state {
			cube(&state[i])
		}
		mix(state)
	}
	for ; r < fullRounds/2+partialRounds; r++ {
		addConstants(state, r)
		cube(&state[width-1])
		mix(state)
	}
	for ; r < rounds; r++ {
		addConstants(state, r)
		for i := range state {
			cube(&state[i])
		}
		mix(state)
	}
}

func addConstants(state *[width]felt.Element, r int) {
	for i := range state {
		state[i].Add(&state[i], &roundConstants[r][i])
	}
}

func cube(x *felt.Element) {
	var sq felt.Element
	sq.Square(x)
	x.Mul(x, &sq)
}

// mix multiplies the state by the MDS matrix.
func mix(state *[width]felt.Element) {
	var t, d felt.Element
	t.Add(&state[0], &state[1])
	t.Add(&t, &state[2])

	d.Double(&state[0])
	state[0].Add(&t, &d)

	d.Double(&state[1])
	state[1].Sub(&t, &d)

	d.Double(&state[2])
	d.Add(&d, &state[2])
	state[2].Sub(&t, &d)
}

// Hash returns the Poseidon hash of x and y.
func Hash(x, y *felt.Element) felt.Element {
	state := [width]felt.Element{*x, *y, felt.New(2)}
	Permute(&state)
	return state[0]
}

// HashSingle returns the Poseidon hash of a single element.
func HashSingle(x *felt.Element) felt.Element {
	state := [width]felt.Element{*x, felt.Zero(), felt.One()}
	Permute(&state)
	return state[0]
}

// HashMany returns the sponge hash of xs. The empty list has a hash too.
func HashMany(xs []felt.Element) felt.Element {
	var h Hasher
	for i := range xs {
		h.Update(&xs[i])
	}
	return h.Finalize()
}

// Hasher absorbs elements one at a time and produces the same digest as
// HashMany over the whole sequence.
//
// The zero value is an empty hasher. A Hasher must not be used
// concurrently.
type Hasher struct {
	state   [width]felt.Element
	pending felt.Element
	full    bool
}

// Update absorbs x.
func (h *Hasher) Update(x *felt.Element) {
	if !h.full {
		h.pending.Set(x)
		h.full = true
		return
	}
	h.state[0].Add(&h.state[0], &h.pending)
	h.state[1].Add(&h.state[1], x)
	Permute(&h.state)
	h.full = false
}

// Finalize pads the absorbed sequence, applies the last permutation and
// returns the digest. The hasher is reset afterwards.
func (h *Hasher) Finalize() felt.Element {
	one := felt.One()
	if h.full {
		h.state[0].Add(&h.state[0], &h.pending)
		h.state[1].Add(&h.state[1], &one)
	} else {
		h.state[0].Add(&h.state[0], &one)
	}
	Permute(&h.state)
	digest := h.state[0]
	*h = Hasher{}
	return digest
}
