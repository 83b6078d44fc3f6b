// Copyright 2020-2024 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reporter

import "sync"

// ErrorReporter is responsible for reporting the given error. If the
// reporter returns a non-nil error, compilation aborts with that error. If
// it returns nil, compilation continues so that further errors can be
// found, but eventually fails with [ErrInvalidSource].
type ErrorReporter func(err ErrorWithPos) error

// WarningReporter is responsible for reporting the given warning. Warnings
// never cause compilation to fail.
type WarningReporter func(ErrorWithPos)

// Reporter handles errors and warnings.
type Reporter interface {
	// Error is called when the given error is encountered. The return value
	// decides whether compilation continues: nil to keep going, non-nil to
	// abort with that error.
	Error(ErrorWithPos) error
	// Warning is called when the given warning is encountered.
	Warning(ErrorWithPos)
}

// NewReporter creates a new reporter that invokes the given functions on
// error or warning. Either may be nil. A nil errs aborts on the first error
// and a nil warnings discards warnings.
func NewReporter(errs ErrorReporter, warnings WarningReporter) Reporter {
	return reporterFuncs{errs: errs, warnings: warnings}
}

type reporterFuncs struct {
	errs     ErrorReporter
	warnings WarningReporter
}

func (r reporterFuncs) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

func (r reporterFuncs) Warning(err ErrorWithPos) {
	if r.warnings != nil {
		r.warnings(err)
	}
}

// Handler is used by the compiler to report errors and warnings from many
// goroutines. It remembers the first error that caused compilation to
// abort; once that happens, every later call returns the same error.
type Handler struct {
	reporter Reporter

	mu       sync.Mutex
	reported int
	err      error
}

// NewHandler creates a new Handler that reports to rep. A nil rep aborts on
// the first error.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil, nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf creates and handles a new error at pos.
func (h *Handler) HandleErrorf(pos Position, format string, args ...any) error {
	return h.HandleError(Errorf(pos, format, args...))
}

// HandleError handles err. Errors that are not ErrorWithPos are not sent
// to the reporter; they abort immediately.
func (h *Handler) HandleError(err error) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	if ewp, ok := err.(ErrorWithPos); ok {
		h.reported++
		err = h.reporter.Error(ewp)
	}
	h.err = err
	return err
}

// HandleWarning reports err as a warning at pos.
func (h *Handler) HandleWarning(pos Position, err error) {
	// Warnings do not touch the handler's state.
	h.reporter.Warning(errorWithPos{pos: pos, underlying: err})
}

// Error returns the error that aborted compilation, or [ErrInvalidSource]
// if errors were reported but the reporter chose to continue. It returns
// nil if no errors were reported.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.reported > 0 && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}

// Reported returns how many positioned errors were sent to the reporter.
func (h *Handler) Reported() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.reported
}
