// Package registryservice owns the festival registry inside the
// festival-operations context.
//
// The module persists years, modalities, criteria, teams, participants,
// judges and specialist assignments, and authenticates judges for the
// ballot flow. Voting and ranking modules consume registry data through
// their own read ports; this module is the single writer for registry
// entities. Business rules live in the application layer and storage is
// isolated behind ports and adapters.
package registryservice
