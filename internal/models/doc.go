// Package models provides functionality for listing OpenAI models usable
// for translation. It helps users discover which chat models are available
// with their API key.
package models
