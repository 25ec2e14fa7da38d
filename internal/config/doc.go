// Package config defines the application configuration structure and loads it
// from the environment. Values come from an optional .env file and from
// ARTICLE_-prefixed environment variables, with environment taking precedence.
package config
