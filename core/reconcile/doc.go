// Package reconcile reconciles a bill of materials against a team's inventory.
//
// A run is split in two steps, the same way a dry run and a confirmed run differ:
//
//  1. Reconcile is pure. It walks the BOM lines in order, classifies each one as
//     ok, low, insufficient or missing, and returns a Plan holding the report
//     (results, alerts, summary) and the mutations needed to persist it.
//  2. Apply writes a Plan through a Ledger: it records the build, sets stock and
//     increments team spend for matched lines, then stores the build parts and
//     final cost.
//
// # Stock semantics
//
// Stock may go negative; that is reported as insufficient, not as an error.
// "available" on a result is always the stock before that line's deduction.
// In real mode a part repeated in one BOM is deducted cumulatively. In simulate
// mode every line sees the untouched snapshot and no stock or spend change is planned,
// but the build is still recorded with status "simulated".
//
// # Usage Example
//
//	plan := reconcile.Reconcile(lines, reconcile.PartMap(parts), reconcile.Options{Simulate: false})
//	buildID, err := reconcile.Apply(ctx, ledger, teamID, "Drive Base v2", plan)
//
// Ledgers that implement StockBatchSetter or SpendBatcher get the batch call
// instead of one call per line.
package reconcile
