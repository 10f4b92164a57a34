// Package rankingengine computes team rankings inside the
// festival-operations context.
//
// The module folds submitted score cards into one final score per team,
// weighting specialist judges individually while general judges are
// averaged into a single consensus figure. Rankings are upserted per
// (year, modality, team) and served as grade-level standings. The module
// never writes score cards; it is a pure consumer of voting output.
package rankingengine
