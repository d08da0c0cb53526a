/**
 *
 * (c) Copyright Ascensio System SIA 2023
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
 *
 */

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/woocommerce/checkout-events/services/checkout/web/core/domain"
	"github.com/woocommerce/checkout-events/services/checkout/web/core/port"
)

type memoryEntry struct {
	buffer  []byte
	expires time.Time
}

// sweepInterval bounds how often inserts scan for expired entries.
const sweepInterval = time.Minute

type memoryResultAdapter struct {
	mu        sync.Mutex
	kvs       map[string]memoryEntry
	now       func() time.Time
	lastSweep time.Time
}

func NewMemoryResultAdapter() port.CheckoutResultAdapter {
	return &memoryResultAdapter{
		kvs:       make(map[string]memoryEntry),
		now:       time.Now,
		lastSweep: time.Now(),
	}
}

// sweep drops expired entries. Callers hold the lock.
func (m *memoryResultAdapter) sweep(now time.Time) {
	if now.Sub(m.lastSweep) < sweepInterval {
		return
	}

	for key, entry := range m.kvs {
		if now.After(entry.expires) {
			delete(m.kvs, key)
		}
	}

	m.lastSweep = now
}

func (m *memoryResultAdapter) InsertResult(ctx context.Context, result domain.Result, ttl time.Duration) error {
	buffer, err := json.Marshal(result)
	if err != nil {
		return err
	}

	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweep(now)
	m.kvs[result.Key] = memoryEntry{
		buffer:  buffer,
		expires: now.Add(ttl),
	}

	return nil
}

func (m *memoryResultAdapter) SelectResultByKey(ctx context.Context, key string) (domain.Result, error) {
	var result domain.Result

	now := m.now()

	m.mu.Lock()
	entry, ok := m.kvs[key]
	if ok && now.After(entry.expires) {
		delete(m.kvs, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return result, fmt.Errorf("%w: %s", domain.ErrResultNotFound, key)
	}

	if err := json.Unmarshal(entry.buffer, &result); err != nil {
		return result, err
	}

	return result, nil
}

func (m *memoryResultAdapter) DeleteResultByKey(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.kvs[key]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrResultNotFound, key)
	}

	delete(m.kvs, key)

	return nil
}
