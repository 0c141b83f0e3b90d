// Package metrics exposes Prometheus collectors for BOM reconciliation.
package metrics
