package pedersen

import (
	"github.com/f3rmion/stark/curve"
	"github.com/f3rmion/stark/felt"
)

// Points published in cairo-lang's pedersen_params.json.
var (
	shiftX = felt.MustHex("0x049ee3eba8c1600700ee1b87eb599f16716b0b1022947733551fde4050ca6804")
	shiftY = felt.MustHex("0x03ca0cfe4b3bc6ddf346d49d06ea0ed34e621062c0e056c1d0405d266e10268a")

	generators = [4][2]felt.Element{
		{
			felt.MustHex("0x0234287dcbaffe7f969c748655fca9e58fa8120b6d56eb0c1080d17957ebe47b"),
			felt.MustHex("0x03b056f100f96fb21e889527d41f4e39940135dd7a6c94cc6ed0268ee89e5615"),
		},
		{
			felt.MustHex("0x04fa56f376c83db33f9dab2656558f3399099ec1de5e3018b7a6932dba8aa378"),
			felt.MustHex("0x03fa0984c931c9e38113e0c0e47e4401562761f92a7a23b45168f4e80ff5b54d"),
		},
		{
			felt.MustHex("0x04ba4cc166be8dec764910f75b45f74b40c690c74709e90f3aa372f0bd2d6997"),
			felt.MustHex("0x0040301cf5c1751f4b971e46c4ede85fcac5c59a5ce5ae7c48151f27b24b219c"),
		},
		{
			felt.MustHex("0x054302dcb0e6cc1c6e44cca8f61a63bb2ca65048d53fb325d36ff12c49a58202"),
			felt.MustHex("0x01b77b3e37d13504b348046268d8ae25ce98ad783c25561a879dcc77e99c2426"),
		},
	}
)

const (
	// lowBits of each input are multiplied by P0 or P2.
	lowBits = 248
	// Each table row covers one 4-bit window.
	lowRows  = lowBits / 4
	highRows = 1
)

// table holds j * 16^i * P for one generator P.
type table [][16]curve.Point

var (
	shift  curve.Point
	tables [4]table
)

func init() {
	if _, err := shift.SetAffine(&shiftX, &shiftY); err != nil {
		panic("pedersen: shift point is not on the curve")
	}
	for k := range generators {
		var p curve.Point
		if _, err := p.SetAffine(&generators[k][0], &generators[k][1]); err != nil {
			panic("pedersen: generator is not on the curve")
		}
		rows := lowRows
		if k%2 == 1 {
			rows = highRows
		}
		tables[k] = newTable(&p, rows)
	}
}

func newTable(p *curve.Point, rows int) table {
	t := make(table, rows)
	base := *p
	for i := range t {
		t[i][0].SetIdentity()
		for j := 1; j < 16; j++ {
			t[i][j].Add(&t[i][j-1], &base)
		}
		for j := 0; j < 4; j++ {
			base.Double(&base)
		}
	}
	return t
}
