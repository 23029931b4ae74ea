// Package anki exports the dictionary as Anki flashcards, either as a CSV
// file for Anki's text import or as a self-contained .apkg package.
package anki
