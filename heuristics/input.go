package heuristics

import (
	"bytes"
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// InputTypes classifies the funding script of each input, index-aligned with
// tx.TxIn.
func InputTypes(tx *wire.MsgTx, prevOuts []PrevOut) []ScriptType {
	types := make([]ScriptType, len(prevOuts))
	for i, p := range prevOuts {
		types[i] = p.Type()
	}
	return types
}

// MixedInputTypes reports whether the inputs spend more than one script type.
func MixedInputTypes(tx *wire.MsgTx, prevOuts []PrevOut) bool {
	seen := make(map[ScriptType]bool)
	for _, p := range prevOuts {
		seen[p.Type()] = true
	}
	return len(seen) > 1
}

// InputOrder returns every ordering the transaction's inputs follow.
func InputOrder(tx *wire.MsgTx, prevOuts []PrevOut) []InputSorting {
	if len(tx.TxIn) == 1 {
		return []InputSorting{SortingSingle}
	}

	var sortings []InputSorting

	amounts := make([]int64, len(prevOuts))
	for i, p := range prevOuts {
		amounts[i] = p.Out.Value
	}
	ascending, descending := true, true
	for i := 1; i < len(amounts); i++ {
		if amounts[i-1] > amounts[i] {
			ascending = false
		}
		if amounts[i-1] < amounts[i] {
			descending = false
		}
	}
	if ascending {
		sortings = append(sortings, SortingAscending)
	}
	if descending {
		sortings = append(sortings, SortingDescending)
	}

	if inputsAreBIP69(tx.TxIn) {
		sortings = append(sortings, SortingBIP69)
	}

	if len(sortings) == 0 {
		sortings = append(sortings, SortingUnknown)
	}
	return sortings
}

// BIP-69 orders inputs by txid interpreted as a big-endian integer, then by
// output index. chainhash stores txids little-endian, so compare reversed.
func inputsAreBIP69(ins []*wire.TxIn) bool {
	return sort.SliceIsSorted(ins, func(i, j int) bool {
		a, b := txidBigEndian(ins[i].PreviousOutPoint.Hash), txidBigEndian(ins[j].PreviousOutPoint.Hash)
		if c := bytes.Compare(a, b); c != 0 {
			return c < 0
		}
		return ins[i].PreviousOutPoint.Index < ins[j].PreviousOutPoint.Index
	})
}

func txidBigEndian(h chainhash.Hash) []byte {
	out := make([]byte, chainhash.HashSize)
	for i := 0; i < chainhash.HashSize; i++ {
		out[i] = h[chainhash.HashSize-1-i]
	}
	return out
}
