// Package lock serializes BOM runs per team.
//
// A reconciliation reads stock, subtracts and writes it back, so two concurrent
// uploads for the same team would lose updates. Callers take Lock(ctx, key) around
// the whole run. RedisLocker coordinates several service instances through SETNX with
// an owner token and TTL; LocalLocker is used when no Redis address is configured.
package lock
