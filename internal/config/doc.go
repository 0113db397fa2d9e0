// Package config resolves where the canonical source tree lives, which catalog
// describes it, and how the tool logs.
package config
