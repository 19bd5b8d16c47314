package ui

import (
	"fmt"

	"github.com/droidium/droidium/internal/logger"
)

// withPanicGuard runs fn and logs instead of crashing when it panics.
func withPanicGuard(scope string, onPanic func(any), fn func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Recovered panic", "scope", scope, "panic", fmt.Sprint(r))
			if onPanic != nil {
				onPanic(r)
			}
		}
	}()
	fn()
}

// guarded wraps a UI callback with withPanicGuard.
func guarded(scope string, fn func()) func() {
	return func() {
		withPanicGuard(scope, nil, fn)
	}
}
