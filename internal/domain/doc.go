// Package domain defines the core business entities of the article
// management system and the validation rules that apply to them.
// It has no dependencies on storage, transport, or framework code.
package domain
