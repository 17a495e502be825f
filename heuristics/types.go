package heuristics

import "github.com/btcsuite/btcd/txscript"

// ScriptType is the coarse classification of a scriptPubKey used by the
// fingerprinting rules.
type ScriptType int

const (
	ScriptNonStandard ScriptType = iota
	ScriptP2PK
	ScriptP2PKH
	ScriptP2SH
	ScriptP2WPKH
	ScriptP2WSH
	ScriptP2TR
	ScriptOpReturn
)

func (t ScriptType) String() string {
	switch t {
	case ScriptP2PK:
		return "p2pk"
	case ScriptP2PKH:
		return "p2pkh"
	case ScriptP2SH:
		return "p2sh"
	case ScriptP2WPKH:
		return "p2wpkh"
	case ScriptP2WSH:
		return "p2wsh"
	case ScriptP2TR:
		return "p2tr"
	case ScriptOpReturn:
		return "op_return"
	default:
		return "nonstandard"
	}
}

// ClassifyScript maps a scriptPubKey to its ScriptType. Bare multisig and
// unknown witness versions fold into ScriptNonStandard; the rule table does
// not distinguish them.
func ClassifyScript(pkScript []byte) ScriptType {
	switch txscript.GetScriptClass(pkScript) {
	case txscript.PubKeyTy:
		return ScriptP2PK
	case txscript.PubKeyHashTy:
		return ScriptP2PKH
	case txscript.ScriptHashTy:
		return ScriptP2SH
	case txscript.WitnessV0PubKeyHashTy:
		return ScriptP2WPKH
	case txscript.WitnessV0ScriptHashTy:
		return ScriptP2WSH
	case txscript.WitnessV1TaprootTy:
		return ScriptP2TR
	case txscript.NullDataTy:
		return ScriptOpReturn
	default:
		return ScriptNonStandard
	}
}

// InputSorting describes an ordering the transaction's inputs follow.
// A transaction can match several sortings at once (e.g. equal amounts are
// both ascending and descending).
type InputSorting int

const (
	// SortingSingle: single-input transactions carry no ordering signal.
	SortingSingle InputSorting = iota
	// SortingAscending: input amounts are nondecreasing.
	SortingAscending
	// SortingDescending: input amounts are nonincreasing.
	SortingDescending
	// SortingBIP69: inputs sorted by (txid, vout) per BIP-69.
	SortingBIP69
	// SortingUnknown: no recognized ordering.
	SortingUnknown
)

func (s InputSorting) String() string {
	switch s {
	case SortingSingle:
		return "single"
	case SortingAscending:
		return "ascending"
	case SortingDescending:
		return "descending"
	case SortingBIP69:
		return "bip69"
	default:
		return "unknown"
	}
}

// OutputStructure describes a structural property of the output list.
type OutputStructure int

const (
	StructureSingle OutputStructure = iota
	StructureDouble
	StructureMulti
	// StructureChangeLast: the detected change output is the last output.
	StructureChangeLast
	// StructureBIP69: outputs sorted by (amount, scriptPubKey) per BIP-69.
	StructureBIP69
)

func (s OutputStructure) String() string {
	switch s {
	case StructureSingle:
		return "single"
	case StructureDouble:
		return "double"
	case StructureMulti:
		return "multi"
	case StructureChangeLast:
		return "change-last"
	case StructureBIP69:
		return "bip69"
	default:
		return "unknown"
	}
}

// ChangeOutcome is the result state of change-output detection.
type ChangeOutcome int

const (
	// ChangeFound: exactly one output identified as change.
	ChangeFound ChangeOutcome = iota
	// ChangeNone: single-output transaction, nothing to find.
	ChangeNone
	// ChangeInconclusive: the heuristics could not single out an output.
	ChangeInconclusive
)

// ChangeTypeMatch relates the detected change output's script type to the
// input and non-change output types.
type ChangeTypeMatch int

const (
	// ChangeMatchUnknown: no change output was found.
	ChangeMatchUnknown ChangeTypeMatch = iota
	// ChangeMatchesInputs: change type equals every input type.
	ChangeMatchesInputs
	// ChangeMatchesOutputs: change type equals every other output type.
	ChangeMatchesOutputs
	// ChangeMatchesBoth: change type equals both sides.
	ChangeMatchesBoth
	// ChangeMatchesNeither: change type stands out from both sides.
	ChangeMatchesNeither
)
