// Package postgres implements the store interfaces on top of a PostgreSQL
// database, and maps driver-level failures onto the store error taxonomy.
package postgres
