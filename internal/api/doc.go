// Package api provides the HTTP handlers for the article management service,
// the request/response models, and the boundary that translates typed domain
// failures into HTTP status codes. No package below this one produces
// HTTP-specific values.
package api
