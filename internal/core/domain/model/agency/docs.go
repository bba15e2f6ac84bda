// Package agency provides the Agency aggregate: a transport fleet plus the running
// income and expense totals, and the order-processing operation.
//
// ProcessOrder is a single pass:
//
//	eligible ──> preferred ──> cheapest ──> ledger (+ weather / accident surcharges)
//
// It returns a structured Result instead of printing; presenting the diagnostics
// is left to the caller. Randomness for the accident draw is injected through
// Randomizer so tests can force either outcome.
package agency
