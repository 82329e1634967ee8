/*
 * Copyright 2026 The Folio Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package locker provides mutexes addressed by key. A lock is created on
// first use and dropped once nobody holds or waits for it.
package locker

import (
	"errors"
	"sync"
)

// ErrNoSuchLock is returned when unlocking a key that is not locked.
var ErrNoSuchLock = errors.New("no such lock")

// Locker is a set of mutexes addressed by key.
type Locker[K comparable] struct {
	mu    sync.Mutex
	locks map[K]*entry
}

// entry is the mutex of one key. refs counts the holder and the waiters; the
// entry is removed from the set when it drops to zero.
type entry struct {
	mu   sync.Mutex
	refs int
}

// New creates a new Locker.
func New[K comparable]() *Locker[K] {
	return &Locker[K]{
		locks: make(map[K]*entry),
	}
}

// Lock locks the mutex of key, blocking until it is available.
func (l *Locker[K]) Lock(key K) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
}

// TryLock locks the mutex of key if it is available and reports whether it
// did.
func (l *Locker[K]) TryLock(key K) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.locks[key]
	if !ok {
		e = &entry{}
		l.locks[key] = e
	}
	if !e.mu.TryLock() {
		if !ok {
			delete(l.locks, key)
		}
		return false
	}

	e.refs++
	return true
}

// Unlock unlocks the mutex of key.
func (l *Locker[K]) Unlock(key K) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.locks[key]
	if !ok {
		return ErrNoSuchLock
	}

	e.refs--
	if e.refs == 0 {
		delete(l.locks, key)
	}
	e.mu.Unlock()

	return nil
}

// Len returns the number of keys that are locked or waited for.
func (l *Locker[K]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.locks)
}
