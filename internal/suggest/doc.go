// Package suggest asks a language model for candidate translations of a word
// the dictionary does not know yet. Suggestions are only ever shown to the
// user, who decides whether to add them to the dictionary; the translation
// engine itself never calls out to a model.
//
// Two providers are available, OpenAI and Gemini. Both are wrapped in a
// circuit breaker so that an unreachable API does not stall the interactive
// session with repeated timeouts.
package suggest
