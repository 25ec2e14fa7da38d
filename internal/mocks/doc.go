// Package mocks provides centralized mock implementations for testing.
//
// Instead of defining inline mocks in individual test files, the mocks here
// are shared across test packages. Each mock exposes function fields for every
// interface method; when a function field is nil, the mock falls back to a
// simple in-memory default so common cases need no setup.
package mocks
