package hantl

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"

	"github.com/oklog/ulid/v2"

	"github.com/ZaguanLabs/hantl/processor"
)

// Handler receives request outcomes. For every live request exactly one of
// OnResult or OnError is called; OnBusy is an advisory loading hint the
// receiver may ignore. Calls arrive from the request's own goroutine.
type Handler interface {
	OnResult(res Result)
	OnError(kind RequestKind, message string)
	OnBusy(active bool)
}

// HandlerFuncs adapts plain functions to the Handler interface. Nil fields
// are ignored.
type HandlerFuncs struct {
	Result func(Result)
	Error  func(RequestKind, string)
	Busy   func(bool)
}

func (h HandlerFuncs) OnResult(res Result) {
	if h.Result != nil {
		h.Result(res)
	}
}

func (h HandlerFuncs) OnError(kind RequestKind, message string) {
	if h.Error != nil {
		h.Error(kind, message)
	}
}

func (h HandlerFuncs) OnBusy(active bool) {
	if h.Busy != nil {
		h.Busy(active)
	}
}

// Orchestrator ties cache lookups, bounded execution, timeout degradation
// and asynchronous result delivery together. Each submitted request runs
// its own pipeline; the Store is the only shared mutable resource.
type Orchestrator struct {
	executor   *Executor
	handler    Handler
	store      Store
	textCfg    GenerationConfig
	wordCfg    GenerationConfig
	wordCtxCfg GenerationConfig
	preprocess func(string) string

	// Per-kind submission epochs. A pipeline only delivers its terminal
	// outcome while its epoch is still current, so a newer request of the
	// same kind silently supersedes a stale in-flight one.
	textEpoch atomic.Uint64
	wordEpoch atomic.Uint64
}

// OrchestratorOption is a functional option for configuring the Orchestrator.
type OrchestratorOption func(*Orchestrator)

// WithStore sets the persistent cache store. Without a store every request
// goes straight to inference.
func WithStore(store Store) OrchestratorOption {
	return func(o *Orchestrator) {
		o.store = store
	}
}

// WithTextConfig overrides the initial full-text generation budget.
func WithTextConfig(cfg GenerationConfig) OrchestratorOption {
	return func(o *Orchestrator) {
		o.textCfg = cfg
	}
}

// WithWordConfig overrides the word lookup and word-in-context budgets.
func WithWordConfig(direct, contextual GenerationConfig) OrchestratorOption {
	return func(o *Orchestrator) {
		o.wordCfg = direct
		o.wordCtxCfg = contextual
	}
}

// WithPreprocess replaces the input preprocessing step applied to request
// text before validation and cache lookup.
func WithPreprocess(fn func(string) string) OrchestratorOption {
	return func(o *Orchestrator) {
		o.preprocess = fn
	}
}

// NewOrchestrator creates an Orchestrator delivering outcomes to handler.
func NewOrchestrator(provider InferenceProvider, handler Handler, opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		executor:   NewExecutor(provider),
		handler:    handler,
		textCfg:    DefaultTextConfig(),
		wordCfg:    WordConfig(),
		wordCtxCfg: WordContextConfig(),
		preprocess: processor.Clean,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Executor returns the bounded executor, exposing its abandoned-execution
// count for observability.
func (o *Orchestrator) Executor() *Executor {
	return o.executor
}

// Submit registers a translation request and returns immediately. The
// outcome is delivered asynchronously through the Handler. Empty or
// whitespace-only text is ignored with no notification.
func (o *Orchestrator) Submit(req TranslationRequest) {
	req.Text = o.preprocess(req.Text)
	if strings.TrimSpace(req.Text) == "" {
		return
	}
	if req.Kind == "" {
		req.Kind = KindFullText
	}

	if err := req.Validate(); err != nil {
		o.handler.OnError(req.Kind, userMessage(err))
		return
	}

	epoch := o.epochFor(req.Kind).Add(1)
	go o.pipeline(req, epoch)
}

func (o *Orchestrator) epochFor(kind RequestKind) *atomic.Uint64 {
	if kind == KindWord {
		return &o.wordEpoch
	}
	return &o.textEpoch
}

// current reports whether a pipeline started at epoch is still the newest
// request of its kind.
func (o *Orchestrator) current(kind RequestKind, epoch uint64) bool {
	return o.epochFor(kind).Load() == epoch
}

func (o *Orchestrator) pipeline(req TranslationRequest, epoch uint64) {
	ctx := context.Background()
	id := ulid.Make().String()

	if o.store != nil {
		if cached, ok := o.store.GetTranslation(ctx, req.Text, req.Source, req.Target); ok {
			o.deliver(epoch, Result{
				ID:        id,
				Kind:      req.Kind,
				Request:   req,
				Text:      cached,
				FromCache: true,
			})
			return
		}
	}

	o.handler.OnBusy(true)

	text, attempts, err := o.translate(ctx, req)
	if err != nil {
		o.handler.OnBusy(false)
		o.fail(epoch, req.Kind, err)
		return
	}

	var contextual string
	if req.Kind == KindWord && req.Context != "" {
		// A failed contextual explanation does not fail the lookup; the
		// direct translation is still worth delivering.
		if explained, cerr := o.executor.Run(ctx, WordContextPrompt(req), o.wordCtxCfg); cerr == nil {
			contextual = CleanWordOutput(explained)
		}
	}

	if o.store != nil {
		if perr := o.store.PutTranslation(ctx, req.Text, req.Source, req.Target, text); perr != nil {
			o.handler.OnBusy(false)
			o.fail(epoch, req.Kind, perr)
			return
		}
	}

	o.handler.OnBusy(false)
	o.deliver(epoch, Result{
		ID:         id,
		Kind:       req.Kind,
		Request:    req,
		Text:       text,
		Contextual: contextual,
		Attempts:   attempts,
	})
}

// translate runs the bounded execution under the degradation policy:
// full-text requests get exactly one cheaper retry after a timeout, word
// lookups never escalate.
func (o *Orchestrator) translate(ctx context.Context, req TranslationRequest) (string, int, error) {
	var cfg GenerationConfig
	var msgs []Message
	switch req.Kind {
	case KindWord:
		cfg = o.wordCfg
		msgs = WordPrompt(req)
	default:
		cfg = o.textCfg
		msgs = TextPrompt(req)
	}

	text, err := o.executor.Run(ctx, msgs, cfg)
	attempts := 1

	var timeout *TimeoutError
	if errors.As(err, &timeout) && req.Kind == KindFullText {
		text, err = o.executor.Run(ctx, msgs, Degrade(cfg))
		attempts = 2
	}
	if err != nil {
		return "", attempts, err
	}

	if req.Kind == KindWord {
		return CleanWordOutput(text), attempts, nil
	}
	return CleanOutput(text, req.Text), attempts, nil
}

// deliver hands a terminal result to the handler unless a newer request of
// the same kind has superseded this pipeline.
func (o *Orchestrator) deliver(epoch uint64, res Result) {
	if !o.current(res.Kind, epoch) {
		return
	}
	o.handler.OnResult(res)
}

// fail converts a pipeline fault into a single user-facing notification.
// No error kind crashes the process or reaches the handler raw.
func (o *Orchestrator) fail(epoch uint64, kind RequestKind, err error) {
	if !o.current(kind, epoch) {
		return
	}
	o.handler.OnError(kind, userMessage(err))
}

// userMessage maps an internal error to the human-readable message shown to
// the user.
func userMessage(err error) string {
	var timeout *TimeoutError
	var storage *StorageError
	var invalid *ValidationError

	switch {
	case errors.As(err, &timeout):
		return "Translation took too long. Please try again with shorter text."
	case errors.As(err, &storage):
		return "Translation succeeded but could not be saved. Please try again."
	case errors.As(err, &invalid):
		return "Unsupported language pair. Choose Korean to English or English to Korean."
	default:
		return "Error occurred during translation. Please try again."
	}
}
