package poseidon

import (
	"crypto/sha256"
	"math/big"
	"strconv"

	"github.com/f3rmion/stark/felt"
)

const (
	width         = 3
	fullRounds    = 8
	partialRounds = 83
	rounds        = fullRounds + partialRounds
)

var roundConstants [rounds][width]felt.Element

func init() {
	var v big.Int
	for r := range roundConstants {
		for j := range roundConstants[r] {
			digest := sha256.Sum256([]byte("Hades" + strconv.Itoa(r*width+j)))
			roundConstants[r][j].SetBigInt(v.SetBytes(digest[:]))
		}
	}
}
