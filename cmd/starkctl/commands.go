package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/f3rmion/stark"
	"github.com/f3rmion/stark/ecdsa"
	"github.com/f3rmion/stark/felt"
	"github.com/f3rmion/stark/keccak"
	"github.com/f3rmion/stark/pedersen"
	"github.com/f3rmion/stark/poseidon"
)

func commands(cfg *config) []*cli.Command {
	return []*cli.Command{
		{
			Name:        "felt",
			Category:    "field",
			Usage:       "Arithmetic modulo the STARK prime",
			Subcommands: feltCommands(),
		},
		{
			Name:      "pedersen",
			Category:  "hash",
			Usage:     "Pedersen hash of two elements, or of an array with --array",
			ArgsUsage: "A B | --array X...",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "array", Usage: "Hash a length-prefixed array of any size"},
			},
			Action: pedersenAction,
		},
		{
			Name:      "poseidon",
			Category:  "hash",
			Usage:     "Poseidon hash of two elements, one with --single, or many with --many",
			ArgsUsage: "A B | --single X | --many X...",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "single", Usage: "Hash exactly one element"},
				&cli.BoolFlag{Name: "many", Usage: "Sponge hash of one or more elements"},
			},
			Action: poseidonAction,
		},
		{
			Name:      "keccak",
			Category:  "hash",
			Usage:     "Keccak-256 of DATA, truncated to 250 bits unless --full",
			ArgsUsage: "DATA",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "full", Usage: "Print the full 256-bit digest"},
				&cli.BoolFlag{Name: "hex", Usage: "Decode DATA as hex instead of text"},
			},
			Action: keccakAction,
		},
		{
			Name:      "selector",
			Category:  "hash",
			Usage:     "Entry point selector for a function name",
			ArgsUsage: "NAME",
			Action:    selectorAction,
		},
		{
			Name:      "pubkey",
			Category:  "signature",
			Usage:     "Public key of a private key",
			ArgsUsage: "PRIV",
			Action:    pubkeyAction,
		},
		{
			Name:      "sign",
			Category:  "signature",
			Usage:     "Sign a message hash, printing r, s and v",
			ArgsUsage: "PRIV MSG",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:        "hedged",
					Usage:       "Mix fresh randomness into the nonce",
					EnvVars:     []string{"STARKCTL_HEDGED"},
					Destination: &cfg.Hedged,
				},
			},
			Action: func(c *cli.Context) error {
				return signAction(c, cfg)
			},
		},
		{
			Name:      "verify",
			Category:  "signature",
			Usage:     "Check a signature; exits with status 2 when it does not match",
			ArgsUsage: "PUB MSG R S",
			Action:    verifyAction,
		},
		{
			Name:      "recover",
			Category:  "signature",
			Usage:     "Recover the public key from a signature and its parity",
			ArgsUsage: "MSG R S V",
			Action:    recoverAction,
		},
	}
}

func feltCommands() []*cli.Command {
	binary := []struct {
		name, usage string
		op          func(a, b []byte) ([]byte, error)
	}{
		{"add", "A + B", stark.FeltAdd},
		{"sub", "A - B", stark.FeltSub},
		{"mul", "A * B", stark.FeltMul},
		{"div", "A / B", stark.FeltDiv},
		{"pow", "A ^ B", stark.FeltPow},
	}
	unary := []struct {
		name, usage string
		op          func(a []byte) ([]byte, error)
	}{
		{"neg", "-A", stark.FeltNeg},
		{"inv", "A^-1", stark.FeltInverse},
		{"sqrt", "Smaller square root of A", stark.FeltSqrt},
	}

	var cmds []*cli.Command
	for _, b := range binary {
		op := b.op
		cmds = append(cmds, &cli.Command{
			Name:      b.name,
			Usage:     b.usage,
			ArgsUsage: "A B",
			Action: func(c *cli.Context) error {
				args, err := feltArgs(c, 2)
				if err != nil {
					return err
				}
				out, err := op(args[0], args[1])
				if err != nil {
					return err
				}
				return printFelt(c, out)
			},
		})
	}
	for _, u := range unary {
		op := u.op
		cmds = append(cmds, &cli.Command{
			Name:      u.name,
			Usage:     u.usage,
			ArgsUsage: "A",
			Action: func(c *cli.Context) error {
				args, err := feltArgs(c, 1)
				if err != nil {
					return err
				}
				out, err := op(args[0])
				if err != nil {
					return err
				}
				return printFelt(c, out)
			},
		})
	}
	return cmds
}

func pedersenAction(c *cli.Context) error {
	if c.Bool("array") {
		xs, err := parseAll(c.Args().Slice())
		if err != nil {
			return err
		}
		h := pedersen.HashMany(xs...)
		return writeLine(c, h.Text())
	}
	args, err := feltArgs(c, 2)
	if err != nil {
		return err
	}
	out, err := stark.PedersenHash(args[0], args[1])
	if err != nil {
		return err
	}
	return printFelt(c, out)
}

func poseidonAction(c *cli.Context) error {
	switch {
	case c.Bool("single") && c.Bool("many"):
		return usageError(c, "--single and --many are exclusive")
	case c.Bool("single"):
		xs, err := parseAll(c.Args().Slice())
		if err != nil {
			return err
		}
		if len(xs) != 1 {
			return usageError(c, "expected 1 argument, got %d", len(xs))
		}
		h := poseidon.HashSingle(&xs[0])
		return writeLine(c, h.Text())
	case c.Bool("many"):
		in := make([][]byte, c.NArg())
		for i, s := range c.Args().Slice() {
			b, err := parseFelt(s)
			if err != nil {
				return err
			}
			in[i] = b
		}
		out, err := stark.PoseidonHashMany(in)
		if err != nil {
			return err
		}
		return printFelt(c, out)
	}
	args, err := feltArgs(c, 2)
	if err != nil {
		return err
	}
	out, err := stark.PoseidonHash(args[0], args[1])
	if err != nil {
		return err
	}
	return printFelt(c, out)
}

func keccakAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return usageError(c, "expected 1 argument, got %d", c.NArg())
	}
	data := []byte(c.Args().First())
	if c.Bool("hex") {
		var err error
		data, err = hex.DecodeString(strip0x(c.Args().First()))
		if err != nil {
			return usageError(c, "DATA is not hex: %v", err)
		}
	}
	log.Debug("hashing", "bytes", len(data), "full", c.Bool("full"))
	if c.Bool("full") {
		return writeLine(c, "0x"+hex.EncodeToString(stark.Keccak256(data)))
	}
	return printFelt(c, stark.StarknetKeccak256(data))
}

func selectorAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return usageError(c, "expected 1 argument, got %d", c.NArg())
	}
	sel := keccak.Selector(c.Args().First())
	return writeLine(c, sel.Text())
}

func pubkeyAction(c *cli.Context) error {
	args, err := feltArgs(c, 1)
	if err != nil {
		return err
	}
	pub, err := stark.GetPublicKey(args[0])
	if err != nil {
		return err
	}
	return printFelt(c, pub)
}

func signAction(c *cli.Context, cfg *config) error {
	args, err := feltArgs(c, 2)
	if err != nil {
		return err
	}
	if !cfg.Hedged {
		sig, err := stark.Sign(args[0], args[1])
		if err != nil {
			return err
		}
		return printSignature(c, sig.R, sig.S, sig.V)
	}

	var priv, msg felt.Element
	if _, err := priv.SetBytes(args[0]); err != nil {
		return err
	}
	if _, err := msg.SetBytes(args[1]); err != nil {
		return err
	}
	key, err := ecdsa.NewPrivateKey(&priv)
	if err != nil {
		return err
	}
	key.Nonces = &ecdsa.Hedged{Rand: rand.Reader}
	sig, err := key.Sign(&msg)
	if err != nil {
		return err
	}
	r, s := sig.R.Bytes(), sig.S.Bytes()
	return printSignature(c, r[:], s[:], sig.V)
}

func verifyAction(c *cli.Context) error {
	args, err := feltArgs(c, 4)
	if err != nil {
		return err
	}
	if err := stark.Verify(args[0], args[1], args[2], args[3]); err != nil {
		return err
	}
	return writeLine(c, "valid")
}

func recoverAction(c *cli.Context) error {
	args, err := feltArgs(c, 4)
	if err != nil {
		return err
	}
	pub, err := stark.Recover(args[0], args[1], args[2], args[3])
	if err != nil {
		return err
	}
	return printFelt(c, pub)
}

func usageError(c *cli.Context, format string, a ...any) error {
	return cli.Exit(fmt.Sprintf("%s: %s", c.Command.FullName(), fmt.Sprintf(format, a...)), int(stark.InvalidInput))
}

// feltArgs parses exactly n hex arguments into 32-byte encodings.
func feltArgs(c *cli.Context, n int) ([][]byte, error) {
	if c.NArg() != n {
		return nil, usageError(c, "expected %d arguments, got %d", n, c.NArg())
	}
	out := make([][]byte, n)
	for i, s := range c.Args().Slice() {
		b, err := parseFelt(s)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

func parseAll(args []string) ([]felt.Element, error) {
	xs := make([]felt.Element, len(args))
	for i, s := range args {
		if _, err := xs[i].SetHex(s); err != nil {
			return nil, err
		}
	}
	return xs, nil
}

func parseFelt(s string) ([]byte, error) {
	var e felt.Element
	if _, err := e.SetHex(s); err != nil {
		return nil, err
	}
	b := e.Bytes()
	return b[:], nil
}

func strip0x(s string) string {
	return strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
}

func writeLine(c *cli.Context, s string) error {
	_, err := fmt.Fprintln(c.App.Writer, s)
	return err
}

func printFelt(c *cli.Context, b []byte) error {
	var e felt.Element
	if _, err := e.SetBytes(b); err != nil {
		return err
	}
	return writeLine(c, e.Text())
}

func printSignature(c *cli.Context, r, s []byte, v uint8) error {
	for _, b := range [][]byte{r, s} {
		if err := printFelt(c, b); err != nil {
			return err
		}
	}
	return writeLine(c, fmt.Sprintf("0x%x", v))
}
