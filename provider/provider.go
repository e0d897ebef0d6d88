// Package provider contains inference backends and wrappers for hantl.
package provider

import "github.com/ZaguanLabs/hantl"

// InferenceProvider is the interface for inference backends.
// This is an alias to the main package interface for convenience.
type InferenceProvider = hantl.InferenceProvider

// Message is an alias to the main package type.
type Message = hantl.Message

// GenerationConfig is an alias to the main package type.
type GenerationConfig = hantl.GenerationConfig
