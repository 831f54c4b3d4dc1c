// Package store provides the optional SQLite run log: one row per
// completed count or trigger computation, plus the per-sub-circuit cycle
// records behind each trigger answer.
//
// The log exists for after-the-fact inspection (which wiring produced
// which answer, and from which periods); the simulator itself never reads
// it.
package store
