// Package heuristics fingerprints Bitcoin transactions by the habits of the
// wallet software that built them: input/output ordering, change placement,
// RBF signaling, low-R signature grinding, fee-sniping protection, script
// type mixing and address reuse.
//
// Every heuristic needs the funding outputs of the transaction's inputs;
// callers supply the previous transactions and ResolvePrevOuts pairs each
// input with its prevout. Analyze computes the full Report, DetectWallet
// narrows the candidate wallet set with the rule table.
//
// Heuristics are probabilistic observations, not proof of origin.
package heuristics
