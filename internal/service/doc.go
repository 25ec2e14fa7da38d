// Package service contains the business rules of the article management
// system: the user directory (registration, authentication, profile and
// password updates) and the article catalog (CRUD and search). Services
// return typed errors; translating them into HTTP responses is the API
// layer's job.
package service
