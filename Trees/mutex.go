//go:build !deadlock

package Trees

import "sync"

// RWMutex is sync.RWMutex unless built with the deadlock tag.
type RWMutex struct {
	sync.RWMutex
}
