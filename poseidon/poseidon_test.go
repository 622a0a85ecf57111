package poseidon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/stark/felt"
)

func TestRoundConstants(t *testing.T) {
	first := roundConstants[0][0]
	assert.Equal(t, "2950795762459345168613727575620414179244544320470208355568817838579231751791", first.BigInt().String())
	assert.Len(t, roundConstants, 91)
}

func TestPermute(t *testing.T) {
	var state [3]felt.Element
	Permute(&state)
	want := []string{
		"0x79e8d1e78258000a28fc9d49e233bc6852357968577b1e386550ed6a9086133",
		"0x3840d003d0f3f96dbb796ff6aa6a63be5b5404b91ccaabca256154cbb6fb984",
		"0x1eb39da3f7d3b04142d0ac83d9da00c9325a61fb2ef326e50b70eaa8a3c7cc7",
	}
	for i := range state {
		assert.Equal(t, want[i], state[i].Text(), "state[%d]", i)
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want string
	}{
		{"Small", "0x1", "0x2", "0x5d44a3decb2b2e0cc71071f7b802f45dd792d064f0fc7316c46514f70f9891a"},
		{
			"Large",
			"0xb662f9017fa7956fd70e26129b1833e10ad000fd37b4d9f4e0ce6884b7bbe",
			"0x1fe356bf76102cdae1bfbdc173602ead228b12904c00dad9cf16e035468bea",
			"0x75540825a6ecc5dc7d7c2f5f868164182742227f1367d66c43ee51ec7937a81",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := felt.MustHex(tt.x)
			y := felt.MustHex(tt.y)
			got := Hash(&x, &y)
			assert.Equal(t, tt.want, got.Text())
		})
	}

	t.Run("Deterministic", func(t *testing.T) {
		x, y := felt.New(1), felt.New(2)
		a := Hash(&x, &y)
		b := Hash(&x, &y)
		assert.True(t, a.Equal(&b))
		c := Hash(&y, &x)
		assert.False(t, a.Equal(&c))
	})
}

func TestHashSingle(t *testing.T) {
	x := felt.MustHex("0x9dad5d6f502ccbcb6d34ede04f0337df3b98936aaf782f4cc07d147e3a4fd6")
	got := HashSingle(&x)
	assert.Equal(t, "0x11222854783f17f1c580ff64671bc3868de034c236f956216e8ed4ab7533455", got.Text())
}

func TestHashMany(t *testing.T) {
	tests := []struct {
		in   []uint64
		want string
	}{
		{[]uint64{1}, "0x579e8877c7755365d5ec1ec7d3a94a457eff5d1f40482bbe9729c064cdead2"},
		{[]uint64{1, 2}, "0x371cb6995ea5e7effcd2e174de264b5b407027a75a231a70c2c8d196107f0e7"},
		{[]uint64{1, 2, 3}, "0x2f0d8840bcf3bc629598d8a6cc80cb7c0d9e52d93dab244bbf9cd0dca0ad082"},
	}
	for _, tt := range tests {
		xs := make([]felt.Element, len(tt.in))
		for i, v := range tt.in {
			xs[i] = felt.New(v)
		}
		got := HashMany(xs)
		assert.Equal(t, tt.want, got.Text(), "HashMany(%v)", tt.in)
	}

	t.Run("Empty", func(t *testing.T) {
		got := HashMany(nil)
		state := [3]felt.Element{felt.One()}
		Permute(&state)
		assert.True(t, got.Equal(&state[0]))
	})

	t.Run("PaddingDistinguishesLengths", func(t *testing.T) {
		a := HashMany([]felt.Element{felt.New(1)})
		b := HashMany([]felt.Element{felt.New(1), felt.New(0)})
		assert.False(t, a.Equal(&b))
	})
}

func TestHasher(t *testing.T) {
	xs := make([]felt.Element, 7)
	for i := range xs {
		xs[i] = felt.New(uint64(i * 31))
	}
	for n := 0; n <= len(xs); n++ {
		var h Hasher
		for i := 0; i < n; i++ {
			h.Update(&xs[i])
		}
		got := h.Finalize()
		want := HashMany(xs[:n])
		require.True(t, got.Equal(&want), "length %d", n)
	}

	t.Run("ResetAfterFinalize", func(t *testing.T) {
		var h Hasher
		one := felt.New(1)
		h.Update(&one)
		first := h.Finalize()
		h.Update(&one)
		second := h.Finalize()
		assert.True(t, first.Equal(&second))
	})
}

func BenchmarkHash(b *testing.B) {
	x, y := felt.New(1), felt.New(2)
	for i := 0; i < b.N; i++ {
		x = Hash(&x, &y)
	}
}
