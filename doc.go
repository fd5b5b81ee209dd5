// Package harmonia is the conservation substrate beneath a larger
// numerical/compression platform: fixed-capacity memory domains whose
// contents obey a global mod-96 conservation law, byte-level resonance
// classification, CSR clustering for bulk access by class, and harmonic
// scheduling of operations into class-aligned time windows.
//
// 🚀 What is harmonia?
//
//	A small, thread-safe library that brings together:
//		• Conservation checking: sum-of-bytes mod 96, validity, snapshot deltas
//		• Resonance classification: byte → class in [0,96), pages & histograms
//		• Witnesses: detached BLAKE2b integrity digests over byte ranges
//		• Budgets: conserved-currency tokens with lock-free allocate/release
//		• Domains: exclusive lifecycle owners of externally attached buffers
//		• Clustering: two-pass counting sort into CSR offsets/indices views
//		• Harmonic scheduling: closed-form earliest class-aligned instants
//
// ✨ Why harmonia?
//
//   - Rock-solid invariants – every view, ledger and domain checks its own
//   - Lock-free where it counts – budgets use CAS retry loops, never locks
//   - Parallel when asked – cluster builds fan out with partition-and-merge
//   - Quiet by default – zap logging only where you wire a logger in
//
// Package map:
//
//	conserve/  — mod-96 sums, conservation tests, normalized deltas
//	resonance/ — byte and page classification, histograms, conjugates
//	witness/   — integrity digests: generate, verify, destroy
//	budget/    — wrapping mod-96 resource ledgers (atomic CAS)
//	domain/    — memory-domain lifecycle: create, attach, verify, commit
//	cluster/   — CSR clustering of pages by resonance class
//	harmonic/  — next-window scheduling and harmonization tests
//	status/    — error-kind taxonomy and per-context last-error tracking
//
// Quick sketch:
//
//	bytes ──▶ resonance ──▶ cluster ──▶ CSR view ──▶ batch consumers
//	bytes ──▶ conserve/witness ──▶ domain lifecycle gate
//	(now,r) ──▶ harmonic ──▶ dispatch window
//
// Dive into each package's doc.go for algorithms, complexity and examples.
//
//	go get github.com/selivant/harmonia
package harmonia
