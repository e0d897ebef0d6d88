// Package processor prepares raw user input for translation: paste cleanup,
// markup stripping, and Korean cultural-marker detection used to steer the
// prompt register.
package processor
