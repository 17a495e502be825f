package heuristics

import (
	"errors"
	"testing"

	"github.com/btcsuite/btcd/wire"
)

func TestResolvePrevOuts(t *testing.T) {
	prev := wire.NewMsgTx(2)
	prev.AddTxIn(synthIn(0xee, 0, wire.MaxTxInSequenceNum))
	prev.AddTxOut(wire.NewTxOut(5000, p2wpkhScript(0x01)))
	prev.AddTxOut(wire.NewTxOut(7000, p2pkhScript(0x02)))

	tx := wire.NewMsgTx(2)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Hash: prev.TxHash(), Index: 1},
		Sequence:         wire.MaxTxInSequenceNum,
	})

	outs, err := ResolvePrevOuts(tx, []*wire.MsgTx{prev})
	if err != nil {
		t.Fatalf("ResolvePrevOuts: %v", err)
	}
	if len(outs) != 1 {
		t.Fatalf("got %d prevouts, want 1", len(outs))
	}
	if outs[0].Out.Value != 7000 {
		t.Errorf("Value = %d, want 7000", outs[0].Out.Value)
	}
	if outs[0].Type() != ScriptP2PKH {
		t.Errorf("Type = %v, want p2pkh", outs[0].Type())
	}
	if outs[0].OutPoint != tx.TxIn[0].PreviousOutPoint {
		t.Errorf("OutPoint = %v, want %v", outs[0].OutPoint, tx.TxIn[0].PreviousOutPoint)
	}
}

func TestResolvePrevOuts_MissingPrevTx(t *testing.T) {
	tx := wire.NewMsgTx(2)
	tx.AddTxIn(synthIn(0x01, 0, wire.MaxTxInSequenceNum))

	if _, err := ResolvePrevOuts(tx, nil); !errors.Is(err, ErrMissingPrevTx) {
		t.Fatalf("expected ErrMissingPrevTx, got %v", err)
	}
}

func TestResolvePrevOuts_BadOutpoint(t *testing.T) {
	prev := wire.NewMsgTx(2)
	prev.AddTxIn(synthIn(0xee, 0, wire.MaxTxInSequenceNum))
	prev.AddTxOut(wire.NewTxOut(5000, p2wpkhScript(0x01)))

	tx := wire.NewMsgTx(2)
	tx.AddTxIn(&wire.TxIn{
		PreviousOutPoint: wire.OutPoint{Hash: prev.TxHash(), Index: 5},
		Sequence:         wire.MaxTxInSequenceNum,
	})

	if _, err := ResolvePrevOuts(tx, []*wire.MsgTx{prev}); !errors.Is(err, ErrBadOutpoint) {
		t.Fatalf("expected ErrBadOutpoint, got %v", err)
	}
}

func TestResolvePrevOuts_NoInputs(t *testing.T) {
	tx := wire.NewMsgTx(2)
	if _, err := ResolvePrevOuts(tx, nil); !errors.Is(err, ErrNoInputs) {
		t.Fatalf("expected ErrNoInputs, got %v", err)
	}
}
