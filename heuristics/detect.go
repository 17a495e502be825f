package heuristics

import (
	"sort"

	"github.com/btcsuite/btcd/wire"
)

// Wallet identifies wallet software the rule table knows about.
type Wallet string

const (
	WalletBitcoinCore Wallet = "Bitcoin Core"
	WalletElectrum    Wallet = "Electrum"
	WalletBlueWallet  Wallet = "Blue Wallet"
	WalletCoinbase    Wallet = "Coinbase"
	WalletExodus      Wallet = "Exodus"
	WalletTrust       Wallet = "Trust"
	WalletTrezor      Wallet = "Trezor"
	WalletLedger      Wallet = "Ledger"
	// WalletOther means every known wallet was ruled out.
	WalletOther Wallet = "Other"
)

type walletSet map[Wallet]bool

func allWallets() walletSet {
	return walletSet{
		WalletBitcoinCore: true,
		WalletElectrum:    true,
		WalletBlueWallet:  true,
		WalletCoinbase:    true,
		WalletExodus:      true,
		WalletTrust:       true,
		WalletTrezor:      true,
		WalletLedger:      true,
	}
}

func (s walletSet) remove(ws ...Wallet) {
	for _, w := range ws {
		delete(s, w)
	}
}

func (s walletSet) retain(ws ...Wallet) {
	keep := make(map[Wallet]bool, len(ws))
	for _, w := range ws {
		keep[w] = true
	}
	for w := range s {
		if !keep[w] {
			delete(s, w)
		}
	}
}

func (s walletSet) sorted() []Wallet {
	out := make([]Wallet, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DetectWallet narrows the candidate wallet set for a transaction by running
// each heuristic through the rule table, and returns the surviving candidates
// with the reasoning trail. When every known wallet is ruled out the result
// is [WalletOther].
//
// Rules fingerprint wallet versions circulating when the table was compiled;
// wallet releases change habits, so treat matches as evidence, not identity.
func DetectWallet(tx *wire.MsgTx, prevTxs []*wire.MsgTx) ([]Wallet, []string, error) {
	prevOuts, err := ResolvePrevOuts(tx, prevTxs)
	if err != nil {
		return nil, nil, err
	}

	possible := allWallets()
	var reasoning []string
	reason := func(r string) { reasoning = append(reasoning, r) }

	// Anti-fee-sniping: only Core and Electrum set a near-tip locktime.
	if IsAntiFeeSniping(tx) {
		reason("anti-fee-sniping locktime")
		possible.retain(WalletBitcoinCore, WalletElectrum)
	} else {
		reason("no anti-fee-sniping")
		possible.remove(WalletBitcoinCore, WalletElectrum)
	}

	// Uncompressed keys rule out the whole table.
	if UsesUncompressedPubkeys(tx, prevOuts) {
		reason("uncompressed public key(s)")
		return []Wallet{WalletOther}, reasoning, nil
	}
	reason("all compressed public keys")

	switch tx.Version {
	case 1:
		reason("nVersion = 1")
		possible.remove(WalletBitcoinCore, WalletElectrum, WalletBlueWallet, WalletExodus, WalletCoinbase)
	case 2:
		reason("nVersion = 2")
		possible.remove(WalletLedger, WalletTrezor, WalletTrust)
	default:
		reason("non-standard nVersion")
		possible.retain()
	}

	if LowRGrinding(tx) {
		reason("low-r signatures")
	} else {
		reason("no low-r grinding")
		possible.remove(WalletBitcoinCore, WalletElectrum)
	}

	if SignalsRBF(tx) {
		reason("signals RBF")
		possible.remove(WalletCoinbase, WalletExodus)
	} else {
		reason("does not signal RBF")
		possible.remove(WalletBitcoinCore, WalletElectrum, WalletBlueWallet,
			WalletLedger, WalletTrezor, WalletTrust)
	}

	inputTypes := InputTypes(tx, prevOuts)
	outputTypes := OutputTypes(tx)

	if containsType(inputTypes, ScriptP2TR) {
		reason("spends taproot output")
		possible.remove(WalletCoinbase, WalletExodus, WalletElectrum,
			WalletBlueWallet, WalletLedger, WalletTrust)
	}
	if containsType(inputTypes, ScriptP2WSH) {
		reason("spends p2wsh output")
		possible.remove(WalletCoinbase, WalletExodus, WalletTrust, WalletTrezor)
	}
	if containsType(inputTypes, ScriptP2PKH) {
		reason("spends p2pkh output")
		possible.remove(WalletExodus, WalletTrust)
	}
	if containsType(outputTypes, ScriptP2TR) {
		reason("sends to taproot address")
		possible.remove(WalletCoinbase)
	}
	if containsType(outputTypes, ScriptOpReturn) || containsType(outputTypes, ScriptNonStandard) {
		reason("creates OP_RETURN or non-standard output")
		possible.remove(WalletCoinbase, WalletExodus, WalletBlueWallet, WalletLedger, WalletTrust)
	}

	if MixedInputTypes(tx, prevOuts) {
		reason("multi-type vin")
		possible.remove(WalletExodus, WalletElectrum, WalletBlueWallet,
			WalletLedger, WalletTrezor, WalletTrust)
	}

	switch ChangeTypeMatchedInputs(tx, prevOuts) {
	case ChangeMatchesOutputs:
		reason("change type matched outputs")
		if possible[WalletBitcoinCore] {
			possible.retain(WalletBitcoinCore)
		} else {
			possible.retain()
		}
	case ChangeMatchesInputs:
		reason("change type matched inputs")
		possible.remove(WalletBitcoinCore)
	}

	if AddressReuse(tx, prevOuts) {
		reason("address reuse between vin and vout")
		possible.remove(WalletCoinbase, WalletBitcoinCore, WalletElectrum,
			WalletBlueWallet, WalletLedger, WalletTrezor)
	} else {
		reason("no address reuse between vin and vout")
		possible.remove(WalletExodus, WalletTrust)
	}

	inputOrder := InputOrder(tx, prevOuts)
	outputStructure := OutputStructureOf(tx, prevOuts)

	if containsStructure(outputStructure, StructureMulti) {
		reason("more than 2 outputs")
		possible.remove(WalletCoinbase, WalletExodus, WalletLedger, WalletTrust)
	}

	if containsStructure(outputStructure, StructureBIP69) {
		reason("BIP-69 followed by outputs")
	} else {
		reason("BIP-69 not followed by outputs")
		possible.remove(WalletElectrum, WalletTrezor)
	}

	if !containsSorting(inputOrder, SortingSingle) {
		if containsSorting(inputOrder, SortingBIP69) {
			reason("BIP-69 followed by inputs")
		} else {
			reason("BIP-69 not followed by inputs")
			possible.remove(WalletElectrum, WalletTrezor)
		}
	}

	if idx, outcome := FindChangeIndex(tx, prevOuts); outcome == ChangeFound {
		if idx != len(tx.TxOut)-1 {
			reason("last output is not change")
			possible.remove(WalletLedger, WalletBlueWallet, WalletCoinbase)
		} else {
			reason("last output is change")
		}
	}

	if len(possible) == 0 {
		return []Wallet{WalletOther}, reasoning, nil
	}
	return possible.sorted(), reasoning, nil
}

func containsType(types []ScriptType, t ScriptType) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}

func containsSorting(sortings []InputSorting, s InputSorting) bool {
	for _, x := range sortings {
		if x == s {
			return true
		}
	}
	return false
}

func containsStructure(structure []OutputStructure, s OutputStructure) bool {
	for _, x := range structure {
		if x == s {
			return true
		}
	}
	return false
}
