package stark

import (
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/stark/felt"
)

func u64(v uint64) []byte {
	e := felt.New(v)
	b := e.Bytes()
	return b[:]
}

func hexFelt(t *testing.T, s string) []byte {
	t.Helper()
	e, err := new(felt.Element).SetHex(s)
	require.NoError(t, err)
	b := e.Bytes()
	return b[:]
}

func modulusBytes() []byte {
	b := make([]byte, FeltSize)
	felt.Modulus().FillBytes(b)
	return b
}

func TestFeltOps(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		out, err := FeltAdd(u64(5), u64(7))
		require.NoError(t, err)
		assert.Equal(t, u64(12), out)
	})

	t.Run("AddWraps", func(t *testing.T) {
		pm1 := new(big.Int).Sub(felt.Modulus(), big.NewInt(1))
		a := make([]byte, FeltSize)
		pm1.FillBytes(a)
		out, err := FeltAdd(a, u64(1))
		require.NoError(t, err)
		assert.Equal(t, u64(0), out)
	})

	t.Run("Sub", func(t *testing.T) {
		out, err := FeltSub(u64(10), u64(3))
		require.NoError(t, err)
		assert.Equal(t, u64(7), out)
	})

	t.Run("Mul", func(t *testing.T) {
		out, err := FeltMul(u64(6), u64(7))
		require.NoError(t, err)
		assert.Equal(t, u64(42), out)
	})

	t.Run("Div", func(t *testing.T) {
		out, err := FeltDiv(u64(42), u64(6))
		require.NoError(t, err)
		assert.Equal(t, u64(7), out)
	})

	t.Run("DivByZero", func(t *testing.T) {
		_, err := FeltDiv(u64(1), u64(0))
		assert.Equal(t, DivisionByZero, StatusOf(err))
		_, err = FeltDiv(u64(0), u64(0))
		assert.Equal(t, DivisionByZero, StatusOf(err))
	})

	t.Run("Neg", func(t *testing.T) {
		out, err := FeltNeg(u64(0))
		require.NoError(t, err)
		assert.Equal(t, u64(0), out)

		out, err = FeltNeg(u64(1))
		require.NoError(t, err)
		want := make([]byte, FeltSize)
		new(big.Int).Sub(felt.Modulus(), big.NewInt(1)).FillBytes(want)
		assert.Equal(t, want, out)
	})

	t.Run("Inverse", func(t *testing.T) {
		out, err := FeltInverse(u64(2))
		require.NoError(t, err)
		assert.Equal(t, hexFelt(t, "0x400000000000008800000000000000000000000000000000000000000000001"), out)

		_, err = FeltInverse(u64(0))
		assert.Equal(t, NoInverse, StatusOf(err))
	})

	t.Run("Pow", func(t *testing.T) {
		out, err := FeltPow(u64(2), u64(10))
		require.NoError(t, err)
		assert.Equal(t, u64(1024), out)
	})

	t.Run("Sqrt", func(t *testing.T) {
		out, err := FeltSqrt(u64(9))
		require.NoError(t, err)
		assert.Equal(t, u64(3), out)

		_, err = FeltSqrt(u64(3))
		assert.Equal(t, NoSquareRoot, StatusOf(err))
	})
}

func TestInputValidation(t *testing.T) {
	bad := map[string][]byte{
		"short":    make([]byte, 31),
		"long":     make([]byte, 33),
		"empty":    nil,
		"modulus":  modulusBytes(),
		"all ones": hexBytes("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
	}
	for name, b := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := FeltAdd(b, u64(1))
			assert.Equal(t, InvalidInput, StatusOf(err))
			_, err = FeltAdd(u64(1), b)
			assert.Equal(t, InvalidInput, StatusOf(err))
			_, err = FeltSqrt(b)
			assert.Equal(t, InvalidInput, StatusOf(err))
			_, err = PedersenHash(b, u64(1))
			assert.Equal(t, InvalidInput, StatusOf(err))
			_, err = PoseidonHashMany([][]byte{u64(1), b})
			assert.Equal(t, InvalidInput, StatusOf(err))
			_, err = GetPublicKey(b)
			assert.Equal(t, InvalidInput, StatusOf(err))
			assert.Equal(t, InvalidInput, StatusOf(Verify(b, u64(1), u64(1), u64(1))))
			_, err = Recover(u64(2), u64(1), u64(1), b)
			assert.Equal(t, InvalidInput, StatusOf(err))
		})
	}
}

func TestHashes(t *testing.T) {
	t.Run("Pedersen", func(t *testing.T) {
		out, err := PedersenHash(u64(1), u64(2))
		require.NoError(t, err)
		assert.Equal(t, hexFelt(t, "0x5bb9440e27889a364bcb678b1f679ecd1347acdedcbf36e83494f857cc58026"), out)
	})

	t.Run("Poseidon", func(t *testing.T) {
		out, err := PoseidonHash(u64(1), u64(2))
		require.NoError(t, err)
		assert.Equal(t, hexFelt(t, "0x5d44a3decb2b2e0cc71071f7b802f45dd792d064f0fc7316c46514f70f9891a"), out)
	})

	t.Run("PoseidonMany", func(t *testing.T) {
		out, err := PoseidonHashMany([][]byte{u64(1), u64(2), u64(3)})
		require.NoError(t, err)
		assert.Equal(t, hexFelt(t, "0x2f0d8840bcf3bc629598d8a6cc80cb7c0d9e52d93dab244bbf9cd0dca0ad082"), out)

		_, err = PoseidonHashMany(nil)
		assert.ErrorIs(t, err, ErrNoInputs)
		assert.Equal(t, InvalidInput, StatusOf(err))
	})

	t.Run("Keccak", func(t *testing.T) {
		assert.Equal(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", hex.EncodeToString(Keccak256(nil)))
		assert.Equal(t, "0083afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e", hex.EncodeToString(StarknetKeccak256([]byte("transfer"))))
		assert.Len(t, StarknetKeccak256([]byte("")), FeltSize)
	})
}

func TestSignature(t *testing.T) {
	priv := u64(1)
	msg := u64(2)

	pub, err := GetPublicKey(priv)
	require.NoError(t, err)
	assert.Equal(t, hexFelt(t, "0x1ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca"), pub)

	sig, err := Sign(priv, msg)
	require.NoError(t, err)
	assert.Equal(t, hexFelt(t, "0x543b191c671bc1f9b2f4e643a5711535cf34cb8330ab22e2416e8cdda8db054"), sig.R)
	assert.Equal(t, hexFelt(t, "0x2f139920a75d2209e972b1bf82dc72e4c1edb8355fdbae7b4910ea7c32e70e2"), sig.S)
	assert.Equal(t, byte(1), sig.V)

	assert.NoError(t, Verify(pub, msg, sig.R, sig.S))
	assert.Equal(t, Success, StatusOf(Verify(pub, msg, sig.R, sig.S)))

	t.Run("VerifyWrongMessage", func(t *testing.T) {
		err := Verify(pub, u64(3), sig.R, sig.S)
		assert.Equal(t, InvalidSignature, StatusOf(err))
	})

	t.Run("Recover", func(t *testing.T) {
		got, err := Recover(msg, sig.R, sig.S, u64(uint64(sig.V)))
		require.NoError(t, err)
		assert.Equal(t, pub, got)
	})

	t.Run("RecoverBadParity", func(t *testing.T) {
		_, err := Recover(msg, sig.R, sig.S, u64(2))
		assert.Equal(t, RecoveryFailed, StatusOf(err))
	})

	t.Run("ZeroPrivateKey", func(t *testing.T) {
		_, err := GetPublicKey(u64(0))
		assert.Equal(t, InvalidInput, StatusOf(err))
		_, err = Sign(u64(0), msg)
		assert.Equal(t, InvalidInput, StatusOf(err))
	})
}

func TestStatus(t *testing.T) {
	codes := map[Status]int{
		Success:          0,
		InvalidInput:     1,
		InvalidSignature: 2,
		RecoveryFailed:   3,
		DivisionByZero:   4,
		NoInverse:        5,
		NoSquareRoot:     6,
	}
	for s, code := range codes {
		assert.Equal(t, code, int(s), s.String())
	}
	assert.Equal(t, "division by zero", DivisionByZero.String())
	assert.Equal(t, "status(9)", Status(9).String())
	assert.Equal(t, InvalidInput, StatusOf(errors.New("unrelated")))
	assert.Equal(t, Success, StatusOf(nil))
}

func hexBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
