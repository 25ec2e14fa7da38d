// Package store provides abstractions for data persistence: the interfaces
// implemented by the concrete database layer, the sentinel errors used to
// classify persistence failures, and transaction helpers.
package store
