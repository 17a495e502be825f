package heuristics

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

var (
	// ErrMissingPrevTx means an input spends a transaction the caller did not supply.
	ErrMissingPrevTx = errors.New("heuristics: previous transaction not supplied")
	// ErrBadOutpoint means an input references an output index past the end of its funding tx.
	ErrBadOutpoint = errors.New("heuristics: outpoint index out of range")
	// ErrNoInputs means the transaction has no inputs to analyze.
	ErrNoInputs = errors.New("heuristics: transaction has no inputs")
)

// PrevOut pairs a transaction input's funding output with the outpoint that
// spends it.
type PrevOut struct {
	Out      *wire.TxOut
	OutPoint wire.OutPoint
}

// Type classifies the funding output's scriptPubKey.
func (p PrevOut) Type() ScriptType {
	return ClassifyScript(p.Out.PkScript)
}

// ResolvePrevOuts maps each input of tx to its funding output, drawn from the
// supplied previous transactions. The result is index-aligned with tx.TxIn.
func ResolvePrevOuts(tx *wire.MsgTx, prevTxs []*wire.MsgTx) ([]PrevOut, error) {
	if len(tx.TxIn) == 0 {
		return nil, ErrNoInputs
	}
	byID := make(map[chainhash.Hash]*wire.MsgTx, len(prevTxs))
	for _, prev := range prevTxs {
		byID[prev.TxHash()] = prev
	}
	outs := make([]PrevOut, 0, len(tx.TxIn))
	for _, in := range tx.TxIn {
		prev, ok := byID[in.PreviousOutPoint.Hash]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingPrevTx, in.PreviousOutPoint.Hash)
		}
		if int(in.PreviousOutPoint.Index) >= len(prev.TxOut) {
			return nil, fmt.Errorf("%w: %s:%d", ErrBadOutpoint, in.PreviousOutPoint.Hash, in.PreviousOutPoint.Index)
		}
		outs = append(outs, PrevOut{
			Out:      prev.TxOut[in.PreviousOutPoint.Index],
			OutPoint: in.PreviousOutPoint,
		})
	}
	return outs, nil
}
