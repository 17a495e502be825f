package heuristics

import (
	"encoding/hex"
	"testing"
)

func TestClassifyScript(t *testing.T) {
	pubkey, err := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	if err != nil {
		t.Fatal(err)
	}
	p2pk := append(append([]byte{0x21}, pubkey...), 0xac)
	opReturn := append([]byte{0x6a, 0x0b}, []byte("hello world")...)

	cases := []struct {
		name   string
		script []byte
		want   ScriptType
	}{
		{"p2pk", p2pk, ScriptP2PK},
		{"p2pkh", p2pkhScript(0x11), ScriptP2PKH},
		{"p2sh", p2shScript(0x22), ScriptP2SH},
		{"p2wpkh", p2wpkhScript(0x33), ScriptP2WPKH},
		{"p2wsh", p2wshScript(0x44), ScriptP2WSH},
		{"p2tr", p2trScript(0x55), ScriptP2TR},
		{"op_return", opReturn, ScriptOpReturn},
		{"empty", nil, ScriptNonStandard},
		{"garbage", []byte{0x01, 0x02, 0x03}, ScriptNonStandard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyScript(tc.script); got != tc.want {
				t.Fatalf("ClassifyScript = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScriptTypeString(t *testing.T) {
	if ScriptP2WPKH.String() != "p2wpkh" {
		t.Fatalf("ScriptP2WPKH.String() = %q", ScriptP2WPKH.String())
	}
	if ScriptNonStandard.String() != "nonstandard" {
		t.Fatalf("ScriptNonStandard.String() = %q", ScriptNonStandard.String())
	}
}
