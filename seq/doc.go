// Package seq provides a memoizing lazy sequence engine.
//
// A Generator is the explicit form of a closure over a growing cache:
// the captured state becomes a Store you can see and own, and the
// captured computation becomes a Rule you can swap. Splitting the two
// is the point —
//
//	→ "What does this sequence compute?"  → the Rule
//	→ "What has it computed so far?"      → the Store
//
// The engine guarantees the properties a memo table is trusted for:
// an index is computed at most once, a computed value never changes,
// and the cache only ever grows. In exchange, Rules must hold up their
// end: pure, deterministic, and reading strictly below the index they
// fill. The guarded prefix makes a rule that cheats fail loudly during
// testing instead of silently corrupting the table.
//
// WARNING: Do not wrap impure computations (time, I/O, randomness) in a
// Rule. Memoizing an impure function does not make it pure; it only
// freezes one arbitrary outcome.
package seq
