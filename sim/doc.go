// Package sim provides the core of the basketball season simulation engine.
//
// # Reading Guide
//
// Start with these files to understand the engine kernel:
//   - player.go, team.go, stats.go: the entity model and the fixed-schema stat record
//   - state.go: LeagueState, the single owned snapshot threaded through every subsystem
//   - match.go: SimulateGame, a pure function of two sides, config and a random source
//
// # Architecture
//
// The sim package defines the data model, the game simulator and the seeded RNG
// partitions; season-level behavior lives in sub-packages:
//   - sim/schedule/: round-robin calendar and the playoff bracket state machine
//   - sim/economy/: market value, negotiation, trades and AI roster management
//   - sim/career/: aging, retirement, progression, rookies, draft and awards
//   - sim/league/: the orchestrator that owns a LeagueState and exposes the command set
//   - sim/trace/: pure transaction records
//   - sim/persistence/: snapshot codec, sealing and save stores
//
// Player.TeamID is the only roster link. Rosters are derived on demand by
// LeagueState.Roster and the only code path that moves a player is
// LeagueState.MovePlayer.
//
// # Determinism
//
// Every random decision draws from a *rand.Rand handed out by PartitionedRNG.
// Two runs with the same SimulationKey, configuration and command sequence
// produce identical leagues.
package sim
