// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package calc

import (
	"context"
	"time"

	"github.com/davecgh/go-spew/spew"
	opentracing "github.com/opentracing/opentracing-go"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/go-calc/history"
	"github.com/dolthub/go-calc/parse"
)

// Config for the Engine.
type Config struct {
	// Debug enables the evaluator trace. Lines are logged at debug level, so
	// the logger must also allow it.
	Debug bool
	// Logger defaults to the logrus standard logger.
	Logger *logrus.Logger
	// Tracer defaults to a noop tracer.
	Tracer opentracing.Tracer
	// History, if set, records every evaluation.
	History *history.Store
}

// Engine evaluates integer expressions.
type Engine struct {
	debug   bool
	log     *logrus.Logger
	tracer  opentracing.Tracer
	history *history.Store
}

// Result of a successful evaluation.
type Result struct {
	ID         string `json:"id"`
	Expression string `json:"expression"`
	Value      int64  `json:"result"`
}

// NewDefault creates a new Engine with no history, tracing or debug output.
func NewDefault() *Engine {
	return New(nil)
}

// New creates a new Engine with the given config.
func New(cfg *Config) *Engine {
	if cfg == nil {
		cfg = &Config{}
	}

	e := &Engine{
		debug:   cfg.Debug,
		log:     cfg.Logger,
		tracer:  cfg.Tracer,
		history: cfg.History,
	}

	if e.log == nil {
		e.log = logrus.StandardLogger()
	}

	if e.tracer == nil {
		e.tracer = opentracing.NoopTracer{}
	}

	return e
}

// Eval evaluates a single expression.
func (e *Engine) Eval(ctx context.Context, expr string) (*Result, error) {
	id := uuid.NewV4().String()
	log := e.log.WithFields(logrus.Fields{
		EvalIDLogField:     id,
		ExpressionLogField: expr,
	})

	span, ctx := e.span(ctx, "calc.eval", opentracing.Tags{
		EvalIDLogField:     id,
		ExpressionLogField: expr,
	})
	defer span.Finish()

	log.Trace("evaluating expression")
	e.logPrevious(log, expr)

	c := parse.NewCursor(expr, parse.WithDebug(e.debug), parse.WithLogger(log))
	v, err := parse.Evaluate(c)

	entry := &history.Entry{
		ID:         id,
		Expression: expr,
		Time:       time.Now().UTC(),
	}

	if err != nil {
		span.SetTag("error", true)
		span.LogKV("message", err.Error())
		if log.Logger.IsLevelEnabled(logrus.TraceLevel) {
			log.Tracef("evaluation failed at:\n%s", spew.Sdump(c.State()))
		}

		entry.Error = err.Error()
		if rerr := e.record(ctx, entry); rerr != nil {
			log.WithError(rerr).Warn("unable to record evaluation")
		}

		return nil, err
	}

	span.SetTag("result", v)
	log.WithField("result", v).Trace("expression evaluated")

	entry.Result = v
	if err := e.record(ctx, entry); err != nil {
		return nil, err
	}

	return &Result{ID: id, Expression: expr, Value: v}, nil
}

// History returns the store evaluations are recorded to, if any.
func (e *Engine) History() *history.Store {
	return e.history
}

func (e *Engine) logPrevious(log *logrus.Entry, expr string) {
	if e.history == nil || !log.Logger.IsLevelEnabled(logrus.TraceLevel) {
		return
	}

	prev, ok, err := e.history.Lookup(expr)
	if err != nil {
		log.WithError(err).Warn("unable to look up history")
		return
	}

	if ok {
		log.WithField("previousID", prev.ID).Trace("expression evaluated before")
	}
}

func (e *Engine) record(ctx context.Context, entry *history.Entry) error {
	if e.history == nil {
		return nil
	}

	span, _ := e.span(ctx, "calc.history", nil)
	defer span.Finish()

	return e.history.Record(entry)
}

// span starts a span as a child of the one in ctx, if any, and returns a
// context holding the new span.
func (e *Engine) span(
	ctx context.Context,
	opName string,
	tags opentracing.Tags,
) (opentracing.Span, context.Context) {
	var opts []opentracing.StartSpanOption
	if parent := opentracing.SpanFromContext(ctx); parent != nil {
		opts = append(opts, opentracing.ChildOf(parent.Context()))
	}
	if tags != nil {
		opts = append(opts, tags)
	}

	span := e.tracer.StartSpan(opName, opts...)
	return span, opentracing.ContextWithSpan(ctx, span)
}
