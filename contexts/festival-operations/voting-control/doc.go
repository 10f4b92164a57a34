// Package votingcontrol owns the voting session lifecycle inside the
// festival-operations context.
//
// The module provisions score cards when a team's session opens, enforces
// the per-card status machine (open, blocked, in-progress, submitted),
// and serves the judge-facing ballot reads. Session provisioning and
// reset are atomic: a team is never left mid-flip between its voting
// status and its score card set. Registry data is consumed read-only
// through the roster port.
package votingcontrol
