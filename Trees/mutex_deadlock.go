//go:build deadlock

package Trees

import "github.com/sasha-s/go-deadlock"

// RWMutex is deadlock.RWMutex, which reports lock order inversions and locks held for too long.
type RWMutex struct {
	deadlock.RWMutex
}
