package heuristics

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// IsAntiFeeSniping reports whether the transaction appears to protect against
// fee sniping by setting its locktime near the current tip.
//
// Without access to the chain height only a nonzero locktime can be observed;
// a full check would be current_height - locktime < 100.
//
// https://bitcoinops.org/en/topics/fee-sniping/
func IsAntiFeeSniping(tx *wire.MsgTx) bool {
	return tx.LockTime != 0
}

// SignalsRBF reports whether any input opts into BIP-125 replace-by-fee by
// carrying a sequence number below 0xfffffffe.
func SignalsRBF(tx *wire.MsgTx) bool {
	for _, in := range tx.TxIn {
		if in.Sequence < wire.MaxTxInSequenceNum-1 {
			return true
		}
	}
	return false
}

// AddressReuse reports whether any output pays back to a scriptPubKey that
// also funds one of the inputs.
func AddressReuse(tx *wire.MsgTx, prevOuts []PrevOut) bool {
	funding := make(map[string]bool, len(prevOuts))
	for _, p := range prevOuts {
		funding[string(p.Out.PkScript)] = true
	}
	for _, out := range tx.TxOut {
		if funding[string(out.PkScript)] {
			return true
		}
	}
	return false
}

// UsesUncompressedPubkeys reports whether any public key revealed by the
// transaction's inputs is in the 65-byte uncompressed SEC encoding. Checked
// material: witness items, scriptSig pushes, and the key embedded in a P2PK
// funding script.
//
// No wallet in the rule table has produced uncompressed keys in years, so a
// hit short-circuits detection.
func UsesUncompressedPubkeys(tx *wire.MsgTx, prevOuts []PrevOut) bool {
	for i, in := range tx.TxIn {
		var candidates [][]byte
		if pushes, err := txscript.PushedData(in.SignatureScript); err == nil {
			candidates = append(candidates, pushes...)
		}
		candidates = append(candidates, in.Witness...)
		if prevOuts[i].Type() == ScriptP2PK {
			if pushes, err := txscript.PushedData(prevOuts[i].Out.PkScript); err == nil && len(pushes) > 0 {
				candidates = append(candidates, pushes[0])
			}
		}
		for _, d := range candidates {
			if len(d) != 65 || d[0] != 0x04 {
				continue
			}
			if _, err := btcec.ParsePubKey(d); err == nil {
				return true
			}
		}
	}
	return false
}
