package heuristics

import (
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// ExtractSignatures collects the DER-encoded ECDSA signatures (with trailing
// sighash byte) from a transaction's inputs. Per input, the scriptSig is
// preferred; the witness stack is used for witness spends.
func ExtractSignatures(tx *wire.MsgTx) [][]byte {
	var sigs [][]byte
	for _, in := range tx.TxIn {
		var candidates [][]byte
		if len(in.SignatureScript) > 0 {
			pushes, err := txscript.PushedData(in.SignatureScript)
			if err != nil {
				continue
			}
			candidates = pushes
		} else {
			candidates = in.Witness
		}
		for _, d := range candidates {
			if looksLikeDERSignature(d) {
				sigs = append(sigs, d)
			}
		}
	}
	return sigs
}

// A DER ECDSA signature plus sighash byte is at least 9 bytes and opens with
// the 0x30 sequence tag. Schnorr signatures (64/65 bytes, no tag) never match.
func looksLikeDERSignature(d []byte) bool {
	return len(d) >= 9 && d[0] == 0x30
}

// lowR reports whether the signature's R value fits 32 bytes with the high
// bit clear. DER pads a high-bit R to 33 bytes, so the R length octet alone
// decides it.
func lowR(sig []byte) (bool, bool) {
	der := sig[:len(sig)-1] // strip sighash byte
	if _, err := ecdsa.ParseDERSignature(der); err != nil {
		return false, false
	}
	return der[3] <= 32, true
}

// LowRGrinding reports whether any ECDSA signature in the transaction has a
// low R value. Wallets that grind low-R signatures (Bitcoin Core, Electrum)
// produce them for every input; everyone else hits one half the time per
// signature.
//
// https://bitcoinops.org/en/topics/low-r-grinding/
func LowRGrinding(tx *wire.MsgTx) bool {
	for _, sig := range ExtractSignatures(tx) {
		if low, ok := lowR(sig); ok && low {
			return true
		}
	}
	return false
}
