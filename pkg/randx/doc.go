// Package randx bridges crypto/rand into the math/rand Source interface, so
// callers get the math/rand drawing API (Intn, Perm, Shuffle) on top of a
// cryptographically secure stream. Deterministic tests substitute a seeded
// rand.NewSource instead.
package randx
