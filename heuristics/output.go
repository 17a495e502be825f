package heuristics

import (
	"bytes"
	"sort"

	"github.com/btcsuite/btcd/wire"
)

// OutputTypes classifies each output's scriptPubKey, index-aligned with
// tx.TxOut.
func OutputTypes(tx *wire.MsgTx) []ScriptType {
	types := make([]ScriptType, len(tx.TxOut))
	for i, out := range tx.TxOut {
		types[i] = ClassifyScript(out.PkScript)
	}
	return types
}

// FindChangeIndex attempts to identify the change output.
//
// Heuristics are applied in order: a lone output matching a uniform input
// type, a lone output reusing a funding script, then a lone non-round amount
// (satoshis not divisible by 100).
func FindChangeIndex(tx *wire.MsgTx, prevOuts []PrevOut) (int, ChangeOutcome) {
	if len(tx.TxOut) == 1 {
		return 0, ChangeNone
	}

	inputTypes := InputTypes(tx, prevOuts)
	outputTypes := OutputTypes(tx)

	uniform := true
	for _, t := range inputTypes {
		if t != inputTypes[0] {
			uniform = false
			break
		}
	}
	if uniform {
		matching := -1
		count := 0
		for i, t := range outputTypes {
			if t == inputTypes[0] {
				matching = i
				count++
			}
		}
		if count == 1 {
			return matching, ChangeFound
		}
	}

	funding := make(map[string]bool, len(prevOuts))
	for _, p := range prevOuts {
		funding[string(p.Out.PkScript)] = true
	}
	shared := -1
	sharedCount := 0
	for i, out := range tx.TxOut {
		if funding[string(out.PkScript)] {
			if shared == -1 {
				shared = i
			}
			sharedCount++
		}
	}
	if sharedCount == 1 {
		return shared, ChangeFound
	}

	nonRound := -1
	nonRoundCount := 0
	for i, out := range tx.TxOut {
		if out.Value%100 != 0 {
			nonRound = i
			nonRoundCount++
		}
	}
	if nonRoundCount == 1 {
		return nonRound, ChangeFound
	}

	return 0, ChangeInconclusive
}

// ChangeTypeMatchedInputs relates the detected change output's script type to
// the input types and the remaining output types.
func ChangeTypeMatchedInputs(tx *wire.MsgTx, prevOuts []PrevOut) ChangeTypeMatch {
	idx, outcome := FindChangeIndex(tx, prevOuts)
	if outcome != ChangeFound {
		return ChangeMatchUnknown
	}

	changeType := ClassifyScript(tx.TxOut[idx].PkScript)

	matchesInputs := true
	for _, p := range prevOuts {
		if p.Type() != changeType {
			matchesInputs = false
			break
		}
	}
	matchesOutputs := true
	for i, out := range tx.TxOut {
		if i == idx {
			continue
		}
		if ClassifyScript(out.PkScript) != changeType {
			matchesOutputs = false
			break
		}
	}

	switch {
	case matchesInputs && matchesOutputs:
		return ChangeMatchesBoth
	case matchesInputs:
		return ChangeMatchesInputs
	case matchesOutputs:
		return ChangeMatchesOutputs
	default:
		return ChangeMatchesNeither
	}
}

// OutputStructureOf returns every structural property the output list
// exhibits.
func OutputStructureOf(tx *wire.MsgTx, prevOuts []PrevOut) []OutputStructure {
	if len(tx.TxOut) == 1 {
		return []OutputStructure{StructureSingle}
	}

	var structure []OutputStructure
	if len(tx.TxOut) == 2 {
		structure = append(structure, StructureDouble)
	} else {
		structure = append(structure, StructureMulti)
	}

	if idx, outcome := FindChangeIndex(tx, prevOuts); outcome == ChangeFound && idx == len(tx.TxOut)-1 {
		structure = append(structure, StructureChangeLast)
	}

	if outputsAreBIP69(tx.TxOut) {
		structure = append(structure, StructureBIP69)
	}
	return structure
}

// BIP-69 orders outputs by amount, breaking ties on scriptPubKey. With unique
// amounts only the amount ordering matters.
func outputsAreBIP69(outs []*wire.TxOut) bool {
	unique := make(map[int64]bool, len(outs))
	duplicates := false
	for _, out := range outs {
		if unique[out.Value] {
			duplicates = true
			break
		}
		unique[out.Value] = true
	}

	if !duplicates {
		return sort.SliceIsSorted(outs, func(i, j int) bool {
			return outs[i].Value < outs[j].Value
		})
	}
	return sort.SliceIsSorted(outs, func(i, j int) bool {
		if outs[i].Value != outs[j].Value {
			return outs[i].Value < outs[j].Value
		}
		return bytes.Compare(outs[i].PkScript, outs[j].PkScript) < 0
	})
}
