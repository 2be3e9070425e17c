// Package snapshot models the flat row list the virtualized calendar list
// renders, and reconciles successive snapshots against the host view with
// minimal incremental updates. Expansions only ever insert rows; already
// materialized rows are never disturbed, which preserves cell reuse and
// avoids visual flicker. Backward expansions additionally compensate the
// scroll offset so the anchored content does not jump.
package snapshot
