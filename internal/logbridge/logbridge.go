// Copyright (c) 2024-2025 Six After, Inc
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package logbridge drains internal failures into a structured log without
// exposing them across the facade boundary.
//
// Every exported operation in this module returns only a plain error value
// (often alongside a length or boolean outcome). The underlying cause —
// which primitive failed, with what parameters, while attempting what — is
// instead written to a structured logger here, tagged with a human-readable
// "while doing X" description and a short correlation id so that several
// drains triggered by one high-level call can be tied back together.
package logbridge

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"hermannm.dev/devlog"
)

// defaultLogger is installed at package load time: a package-level,
// concurrency-safe default that panics only if something about the
// process environment is fundamentally broken (here: never, since
// devlog.NewHandler never fails).
var defaultLogger = slog.New(devlog.NewHandler(os.Stderr, &devlog.Options{}))

// logger is the active logger, swappable via SetLogger.
var logger = defaultLogger

// SetLogger redirects the facade's drained-error log to dst. Passing nil
// restores the default devlog-backed stderr logger.
func SetLogger(dst *slog.Logger) {
	if dst == nil {
		logger = defaultLogger
		return
	}
	logger = dst
}

// Op groups the drains produced by a single high-level facade call under one
// correlation id, so a caller reading the log can tell that a hybrid-decrypt
// failure's RSA-stage and AES-stage log lines belong to the same call.
type Op struct {
	id  string
	tag string
}

// Begin starts a correlated operation named tag (e.g. "hybrid decrypt",
// "dh compute-secret"). Call Drain on the result as failures occur.
func Begin(tag string) Op {
	return Op{id: uuid.NewString()[:8], tag: tag}
}

// Drain logs err at the appropriate severity, tagged with a human-readable
// description of what was being attempted, plus any extra structured
// key/value attrs. It never returns anything: the caller of the exported
// operation only ever sees the boolean/length/error outcome, not this log.
func (o Op) Drain(severity slog.Level, what string, err error, attrs ...any) {
	if err == nil {
		return
	}
	args := make([]any, 0, len(attrs)+6)
	args = append(args, slog.String("op", o.tag), slog.String("op_id", o.id), slog.String("while", what))
	args = append(args, attrs...)
	logger.Log(context.Background(), severity, err.Error(), args...)
}

// Error is a convenience for the common case of draining at slog.LevelError.
func (o Op) Error(what string, err error, attrs ...any) {
	o.Drain(slog.LevelError, what, err, attrs...)
}

// Warn is a convenience for draining recoverable conditions (e.g. a DH
// public-value regeneration after a rejected candidate) at slog.LevelWarn.
func (o Op) Warn(what string, err error, attrs ...any) {
	o.Drain(slog.LevelWarn, what, err, attrs...)
}

// Info logs a non-error informational line (e.g. which accelerated backend
// was selected at Initialize time) tagged with this operation's id.
func (o Op) Info(msg string, attrs ...any) {
	args := make([]any, 0, len(attrs)+4)
	args = append(args, slog.String("op", o.tag), slog.String("op_id", o.id))
	args = append(args, attrs...)
	logger.Info(msg, args...)
}
