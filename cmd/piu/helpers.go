package main

import (
	"net"
	"os"

	"github.com/atotto/clipboard"

	"github.com/zx06/piu/internal/errors"
)

// Lifetime bounds in minutes; out-of-range values are clamped, matching
// the service contract.
const (
	minLifetime = 1
	maxLifetime = 525600
)

// clampLifetime clamps a lifetime to [minLifetime, maxLifetime]
func clampLifetime(v int) int {
	if v < minLifetime {
		return minLifetime
	}
	if v > maxLifetime {
		return maxLifetime
	}
	return v
}

// envOr returns the value of the environment variable or a fallback
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// lookupHost verifies a hostname resolves in DNS
func lookupHost(host string) error {
	_, err := net.LookupHost(host)
	return err
}

// clipboardWrite copies text into the system clipboard
func clipboardWrite(text string) error {
	return clipboard.WriteAll(text)
}

// normalizeErr normalizes any error to PiuError
func normalizeErr(err error) *errors.PiuError {
	if pe, ok := errors.As(err); ok {
		return pe
	}
	// cobra usage errors land here
	return errors.Wrap(errors.CodeCfgInvalid, err.Error(), nil, err)
}
