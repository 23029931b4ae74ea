// Package models lists the OpenAI chat models that can be used as
// translation suggestion providers with the configured API key.
package models
