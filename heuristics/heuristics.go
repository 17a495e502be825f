package heuristics

import "github.com/btcsuite/btcd/wire"

// Report collects every heuristic observed on one transaction.
type Report struct {
	// Version is the transaction's nVersion.
	Version int32
	// AntiFeeSniping: locktime set to protect against fee sniping.
	AntiFeeSniping bool
	// LowRGrinding: at least one ECDSA signature with a low R value.
	LowRGrinding bool
	// AddressReuse: an output pays back to a funding scriptPubKey.
	AddressReuse bool
	// SignalsRBF: at least one input opts into BIP-125 replacement.
	SignalsRBF bool
	// UncompressedPubkeys: an input reveals a 65-byte uncompressed key.
	UncompressedPubkeys bool
	// MixedInputTypes: inputs spend more than one script type.
	MixedInputTypes bool

	// InputTypes, index-aligned with the inputs.
	InputTypes []ScriptType
	// InputOrder: every ordering the inputs follow.
	InputOrder []InputSorting

	// OutputTypes, index-aligned with the outputs.
	OutputTypes []ScriptType
	// OutputStructure: structural properties of the output list.
	OutputStructure []OutputStructure
	// ChangeIndex is meaningful only when ChangeOutcome is ChangeFound.
	ChangeIndex   int
	ChangeOutcome ChangeOutcome
	// ChangeTypeMatch relates the change type to input/output types.
	ChangeTypeMatch ChangeTypeMatch
}

// Analyze computes the full heuristics report for a transaction given its
// resolved prevouts.
func Analyze(tx *wire.MsgTx, prevOuts []PrevOut) *Report {
	idx, outcome := FindChangeIndex(tx, prevOuts)
	return &Report{
		Version:             tx.Version,
		AntiFeeSniping:      IsAntiFeeSniping(tx),
		LowRGrinding:        LowRGrinding(tx),
		AddressReuse:        AddressReuse(tx, prevOuts),
		SignalsRBF:          SignalsRBF(tx),
		UncompressedPubkeys: UsesUncompressedPubkeys(tx, prevOuts),
		MixedInputTypes:     MixedInputTypes(tx, prevOuts),
		InputTypes:          InputTypes(tx, prevOuts),
		InputOrder:          InputOrder(tx, prevOuts),
		OutputTypes:         OutputTypes(tx),
		OutputStructure:     OutputStructureOf(tx, prevOuts),
		ChangeIndex:         idx,
		ChangeOutcome:       outcome,
		ChangeTypeMatch:     ChangeTypeMatchedInputs(tx, prevOuts),
	}
}

// AnalyzeTx resolves prevouts from the supplied previous transactions and
// computes the report.
func AnalyzeTx(tx *wire.MsgTx, prevTxs []*wire.MsgTx) (*Report, error) {
	prevOuts, err := ResolvePrevOuts(tx, prevTxs)
	if err != nil {
		return nil, err
	}
	return Analyze(tx, prevOuts), nil
}
