package sim

import (
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible league run.
// Two runs with the same SimulationKey, identical configuration and the same
// command sequence MUST produce identical league snapshots.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemMatch drives every possession of every simulated game.
	SubsystemMatch = "match"

	// SubsystemSchedule drives round-robin shuffling and home/away assignment.
	SubsystemSchedule = "schedule"

	// SubsystemEconomy drives AI trades, free agency and contract lengths.
	SubsystemEconomy = "economy"

	// SubsystemProgression drives retirement rolls and attribute growth/decline.
	SubsystemProgression = "progression"

	// SubsystemDraft drives rookie generation and AI draft choices.
	SubsystemDraft = "draft"

	// SubsystemBootstrap drives data-repair randomness (derived potentials, dummy teams).
	SubsystemBootstrap = "bootstrap"

	// SubsystemIDs feeds deterministic transaction identifiers.
	SubsystemIDs = "ids"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula: masterSeed XOR fnv1a64(subsystemName). Isolation means a
// change in how many draws one subsystem makes (e.g. an extra AI trade roll)
// never shifts the sequence seen by another (e.g. the match engine).
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(int64(p.key) ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// RandInt returns a uniform integer in the closed interval [lo, hi].
func RandInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// RandUniform returns a uniform float64 in [lo, hi).
func RandUniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

// WeightedIndex picks an index with probability proportional to weights[i].
// Non-positive totals fall back to a uniform choice. Returns -1 for an empty slice.
func WeightedIndex(rng *rand.Rand, weights []float64) int {
	if len(weights) == 0 {
		return -1
	}
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return rng.Intn(len(weights))
	}
	target := rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if target < acc {
			return i
		}
	}
	return len(weights) - 1
}
