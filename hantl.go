// Package hantl is the request orchestration core of a Korean-English
// translator backed by a slow, non-deterministic inference call.
//
// It keeps an interactive front-end responsive by combining a persistent
// result cache, a bounded-time execution wrapper around the inference
// backend, a degradation policy for timed-out requests, and an orchestrator
// that delivers every outcome asynchronously.
//
// Basic usage:
//
//	import (
//	    "github.com/ZaguanLabs/hantl"
//	    "github.com/ZaguanLabs/hantl/cache"
//	    "github.com/ZaguanLabs/hantl/provider"
//	)
//
//	func main() {
//	    p := provider.NewOpenAIProvider(provider.OpenAIConfig{
//	        APIKey: os.Getenv("OPENAI_API_KEY"),
//	    })
//
//	    store, err := cache.NewSQLiteStore("translations.db")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer store.Close()
//
//	    done := make(chan struct{})
//	    orch := hantl.NewOrchestrator(p, hantl.HandlerFuncs{
//	        Result: func(res hantl.Result) { fmt.Println(res.Text); close(done) },
//	        Error:  func(_ hantl.RequestKind, msg string) { fmt.Println(msg); close(done) },
//	    }, hantl.WithStore(store))
//
//	    orch.Submit(hantl.TranslationRequest{
//	        Text:   "안녕하세요",
//	        Source: hantl.Korean,
//	        Target: hantl.English,
//	        Kind:   hantl.KindFullText,
//	    })
//	    <-done
//	}
package hantl
