package main

import (
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/btcsuite/btcd/wire"

	"github.com/arminsabouri/wallet-fingerprint/fingerprint"
	"github.com/arminsabouri/wallet-fingerprint/heuristics"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "derive":
		return cmdDerive(args[1:], out, errOut)
	case "key-cid":
		return cmdKeyCID(args[1:], out, errOut)
	case "detect":
		return cmdDetect(args[1:], out, errOut)
	case "analyze":
		return cmdAnalyze(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "walletfp: wallet fingerprints and transaction heuristics")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  walletfp derive --variant <v> [--alg <a>] [--width <n>] [--format <f>] (<hex> | --in <file>)")
	fmt.Fprintln(w, "  walletfp key-cid [--variant <v>] <hex>")
	fmt.Fprintln(w, "  walletfp detect --tx <hexfile> --prev <hexfile> [--prev <hexfile> ...]")
	fmt.Fprintln(w, "  walletfp analyze --tx <hexfile> --prev <hexfile> [--prev <hexfile> ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintf(w, "  - variants: %s\n", strings.Join(variantNames(), ", "))
	fmt.Fprintf(w, "  - algorithms: %s, %s, %s, %s\n",
		fingerprint.HashSHA2_256, fingerprint.HashSHA2_512, fingerprint.HashSHA3_256, fingerprint.HashBLAKE3)
	fmt.Fprintf(w, "  - formats: %s, %s, %s\n",
		fingerprint.FormatHex, fingerprint.FormatBase58, fingerprint.FormatRaw)
	fmt.Fprintln(w, "  - --in reads raw material bytes; the positional argument is hex")
	fmt.Fprintln(w, "  - detect/analyze hex files hold one transaction each; every --prev")
	fmt.Fprintln(w, "    funding transaction of --tx must be supplied")
}

func variantNames() []string {
	names := make([]string, len(fingerprint.Variants))
	for i, v := range fingerprint.Variants {
		names[i] = string(v)
	}
	return names
}

func cmdDerive(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("derive", flag.ContinueOnError)
	fs.SetOutput(errOut)
	variant := fs.String("variant", "", "Material variant")
	alg := fs.String("alg", fingerprint.DefaultHashAlg, "Digest algorithm")
	width := fs.Int("width", fingerprint.DefaultWidth, "Fingerprint width in bytes")
	format := fs.String("format", fingerprint.FormatHex, "Output format")
	inPath := fs.String("in", "", "Read raw material bytes from file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *variant == "" {
		fmt.Fprintln(errOut, "usage: walletfp derive --variant <v> [--alg <a>] [--width <n>] [--format <f>] (<hex> | --in <file>)")
		return 2
	}

	v, err := fingerprint.ParseVariant(*variant)
	if err != nil {
		fmt.Fprintf(errOut, "derive: %v\n", err)
		return 2
	}
	material, code := readMaterial(fs, *inPath, errOut)
	if code != 0 {
		return code
	}

	cfg := fingerprint.Config{HashAlg: *alg, Width: *width, Format: *format}
	fp, err := fingerprint.Derive(material, v, cfg)
	if err != nil {
		fmt.Fprintf(errOut, "derive: %v\n", err)
		return 1
	}
	if fp.Format() == fingerprint.FormatRaw {
		_, _ = out.Write(fp.Bytes())
		return 0
	}
	_, _ = fmt.Fprintln(out, fp)
	return 0
}

func cmdKeyCID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("key-cid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	variant := fs.String("variant", string(fingerprint.VariantCompressedPoint), "Material variant")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: walletfp key-cid [--variant <v>] <hex>")
		return 2
	}

	v, err := fingerprint.ParseVariant(*variant)
	if err != nil {
		fmt.Fprintf(errOut, "key-cid: %v\n", err)
		return 2
	}
	material, err := hex.DecodeString(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "key-cid: decode hex: %v\n", err)
		return 2
	}
	id, err := fingerprint.KeyCID(material, v)
	if err != nil {
		fmt.Fprintf(errOut, "key-cid: %v\n", err)
		return 1
	}
	_, _ = fmt.Fprintln(out, id)
	return 0
}

func cmdDetect(args []string, out io.Writer, errOut io.Writer) int {
	tx, prevs, code := parseTxFlags("detect", args, errOut)
	if code != 0 {
		return code
	}

	wallets, reasoning, err := heuristics.DetectWallet(tx, prevs)
	if err != nil {
		fmt.Fprintf(errOut, "detect: %v\n", err)
		return 1
	}
	names := make([]string, len(wallets))
	for i, w := range wallets {
		names[i] = string(w)
	}
	_, _ = fmt.Fprintf(out, "wallets: %s\n", strings.Join(names, ", "))
	for _, r := range reasoning {
		_, _ = fmt.Fprintf(out, "  - %s\n", r)
	}
	return 0
}

func cmdAnalyze(args []string, out io.Writer, errOut io.Writer) int {
	tx, prevs, code := parseTxFlags("analyze", args, errOut)
	if code != 0 {
		return code
	}

	report, err := heuristics.AnalyzeTx(tx, prevs)
	if err != nil {
		fmt.Fprintf(errOut, "analyze: %v\n", err)
		return 1
	}

	_, _ = fmt.Fprintf(out, "version:              %d\n", report.Version)
	_, _ = fmt.Fprintf(out, "anti-fee-sniping:     %v\n", report.AntiFeeSniping)
	_, _ = fmt.Fprintf(out, "signals-rbf:          %v\n", report.SignalsRBF)
	_, _ = fmt.Fprintf(out, "low-r-grinding:       %v\n", report.LowRGrinding)
	_, _ = fmt.Fprintf(out, "address-reuse:        %v\n", report.AddressReuse)
	_, _ = fmt.Fprintf(out, "uncompressed-pubkeys: %v\n", report.UncompressedPubkeys)
	_, _ = fmt.Fprintf(out, "mixed-input-types:    %v\n", report.MixedInputTypes)
	_, _ = fmt.Fprintf(out, "input-types:          %s\n", joinStringers(report.InputTypes))
	_, _ = fmt.Fprintf(out, "input-order:          %s\n", joinStringers(report.InputOrder))
	_, _ = fmt.Fprintf(out, "output-types:         %s\n", joinStringers(report.OutputTypes))
	_, _ = fmt.Fprintf(out, "output-structure:     %s\n", joinStringers(report.OutputStructure))
	switch report.ChangeOutcome {
	case heuristics.ChangeFound:
		_, _ = fmt.Fprintf(out, "change-index:         %d\n", report.ChangeIndex)
		_, _ = fmt.Fprintf(out, "change-type-match:    %s\n", changeMatchName(report.ChangeTypeMatch))
	case heuristics.ChangeNone:
		_, _ = fmt.Fprintln(out, "change-index:         none")
	default:
		_, _ = fmt.Fprintln(out, "change-index:         inconclusive")
	}
	return 0
}

func changeMatchName(m heuristics.ChangeTypeMatch) string {
	switch m {
	case heuristics.ChangeMatchesInputs:
		return "inputs"
	case heuristics.ChangeMatchesOutputs:
		return "outputs"
	case heuristics.ChangeMatchesBoth:
		return "both"
	case heuristics.ChangeMatchesNeither:
		return "neither"
	default:
		return "unknown"
	}
}

func joinStringers[T fmt.Stringer](xs []T) string {
	names := make([]string, len(xs))
	for i, x := range xs {
		names[i] = x.String()
	}
	return strings.Join(names, ", ")
}

// stringList collects a repeatable flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func parseTxFlags(name string, args []string, errOut io.Writer) (*wire.MsgTx, []*wire.MsgTx, int) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	txPath := fs.String("tx", "", "File holding the transaction hex")
	var prevPaths stringList
	fs.Var(&prevPaths, "prev", "File holding a funding transaction hex (repeatable)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, 2
	}
	if *txPath == "" || len(prevPaths) == 0 {
		fmt.Fprintf(errOut, "usage: walletfp %s --tx <hexfile> --prev <hexfile> [--prev <hexfile> ...]\n", name)
		return nil, nil, 2
	}

	tx, err := readTxHexFile(*txPath)
	if err != nil {
		fmt.Fprintf(errOut, "%s: read --tx: %v\n", name, err)
		return nil, nil, 1
	}
	prevs := make([]*wire.MsgTx, 0, len(prevPaths))
	for _, p := range prevPaths {
		prev, err := readTxHexFile(p)
		if err != nil {
			fmt.Fprintf(errOut, "%s: read --prev: %v\n", name, err)
			return nil, nil, 1
		}
		prevs = append(prevs, prev)
	}
	return tx, prevs, 0
}

func readTxHexFile(path string) (*wire.MsgTx, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw, err := hex.DecodeString(strings.TrimSpace(string(b)))
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	tx := wire.NewMsgTx(wire.TxVersion)
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("deserialize transaction: %w", err)
	}
	return tx, nil
}

func readMaterial(fs *flag.FlagSet, inPath string, errOut io.Writer) ([]byte, int) {
	if inPath != "" {
		if fs.NArg() != 0 {
			fmt.Fprintln(errOut, "derive: --in and a positional hex argument are mutually exclusive")
			return nil, 2
		}
		b, err := os.ReadFile(inPath)
		if err != nil {
			fmt.Fprintf(errOut, "derive: read --in: %v\n", err)
			return nil, 1
		}
		return b, 0
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: walletfp derive --variant <v> [--alg <a>] [--width <n>] [--format <f>] (<hex> | --in <file>)")
		return nil, 2
	}
	material, err := hex.DecodeString(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(errOut, "derive: decode hex: %v\n", err)
		return nil, 2
	}
	return material, 0
}
