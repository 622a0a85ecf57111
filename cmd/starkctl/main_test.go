package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/stark"
)

func runCLI(t *testing.T, args ...string) (string, int) {
	t.Helper()
	var out bytes.Buffer
	code := run(append([]string{"starkctl"}, args...), &out)
	return strings.TrimSpace(out.String()), code
}

func TestFeltCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"felt", "add", "0x5", "0x7"}, "0xc"},
		{[]string{"felt", "sub", "0x1", "0x2"}, "0x800000000000011000000000000000000000000000000000000000000000000"},
		{[]string{"felt", "mul", "0x6", "0x7"}, "0x2a"},
		{[]string{"felt", "div", "0x2a", "0x6"}, "0x7"},
		{[]string{"felt", "pow", "0x2", "0xa"}, "0x400"},
		{[]string{"felt", "neg", "0x0"}, "0x0"},
		{[]string{"felt", "inv", "0x2"}, "0x400000000000008800000000000000000000000000000000000000000000001"},
		{[]string{"felt", "sqrt", "0x9"}, "0x3"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, code := runCLI(t, tt.args...)
			require.Equal(t, 0, code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want stark.Status
	}{
		{"DivisionByZero", []string{"felt", "div", "0x1", "0x0"}, stark.DivisionByZero},
		{"NoInverse", []string{"felt", "inv", "0x0"}, stark.NoInverse},
		{"NoSquareRoot", []string{"felt", "sqrt", "0x3"}, stark.NoSquareRoot},
		{"BadHex", []string{"felt", "add", "0xzz", "0x1"}, stark.InvalidInput},
		{"NotCanonical", []string{"felt", "neg", "0x800000000000011000000000000000000000000000000000000000000000001"}, stark.InvalidInput},
		{"ArgCount", []string{"felt", "add", "0x1"}, stark.InvalidInput},
		{"EmptyPoseidon", []string{"poseidon", "--many"}, stark.InvalidInput},
		{"BadParity", []string{"recover", "0x2",
			"0x543b191c671bc1f9b2f4e643a5711535cf34cb8330ab22e2416e8cdda8db054",
			"0x2f139920a75d2209e972b1bf82dc72e4c1edb8355fdbae7b4910ea7c32e70e2",
			"0x2"}, stark.RecoveryFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, code := runCLI(t, tt.args...)
			assert.Equal(t, int(tt.want), code)
		})
	}
}

func TestHashCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"pedersen", "0x1", "0x2"}, "0x5bb9440e27889a364bcb678b1f679ecd1347acdedcbf36e83494f857cc58026"},
		{[]string{"pedersen", "--array"}, "0x49ee3eba8c1600700ee1b87eb599f16716b0b1022947733551fde4050ca6804"},
		{[]string{"poseidon", "0x1", "0x2"}, "0x5d44a3decb2b2e0cc71071f7b802f45dd792d064f0fc7316c46514f70f9891a"},
		{[]string{"poseidon", "--many", "0x1", "0x2", "0x3"}, "0x2f0d8840bcf3bc629598d8a6cc80cb7c0d9e52d93dab244bbf9cd0dca0ad082"},
		{[]string{"keccak", "transfer"}, "0x83afd3f4caedc6eebf44246fe54e38c95e3179a5ec9ea81740eca5b482d12e"},
		{[]string{"keccak", "--full", ""}, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{[]string{"keccak", "--full", "--hex", "0x68656c6c6f"}, "0x1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"},
		{[]string{"selector", "__execute__"}, "0x15d40a3d6ca2ac30f4031e42be28da9b056fef9bb7357ac5e85627ee876e5ad"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, code := runCLI(t, tt.args...)
			require.Equal(t, 0, code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignatureCommands(t *testing.T) {
	const (
		pub = "0x1ef15c18599971b7beced415a40f0c7deacfd9b0d1819e03d723d8bc943cfca"
		r   = "0x543b191c671bc1f9b2f4e643a5711535cf34cb8330ab22e2416e8cdda8db054"
		s   = "0x2f139920a75d2209e972b1bf82dc72e4c1edb8355fdbae7b4910ea7c32e70e2"
	)

	got, code := runCLI(t, "pubkey", "0x1")
	require.Equal(t, 0, code)
	assert.Equal(t, pub, got)

	got, code = runCLI(t, "sign", "0x1", "0x2")
	require.Equal(t, 0, code)
	assert.Equal(t, []string{r, s, "0x1"}, strings.Fields(got))

	got, code = runCLI(t, "verify", pub, "0x2", r, s)
	require.Equal(t, 0, code)
	assert.Equal(t, "valid", got)

	_, code = runCLI(t, "verify", pub, "0x3", r, s)
	assert.Equal(t, int(stark.InvalidSignature), code)

	got, code = runCLI(t, "recover", "0x2", r, s, "0x1")
	require.Equal(t, 0, code)
	assert.Equal(t, pub, got)

	t.Run("Hedged", func(t *testing.T) {
		got, code := runCLI(t, "sign", "--hedged", "0x1", "0x2")
		require.Equal(t, 0, code)
		fields := strings.Fields(got)
		require.Len(t, fields, 3)
		_, code = runCLI(t, "verify", pub, "0x2", fields[0], fields[1])
		assert.Equal(t, 0, code)
	})
}
