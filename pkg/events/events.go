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

package events

import (
	"context"
	"fmt"
	"runtime/debug"
	"sort"
	"sync"

	"github.com/woocommerce/checkout-events/pkg/log"
)

// DefaultPriority is the priority used when a subscriber does not pass one.
const DefaultPriority = 10

// Listener observes a named event. A nil response means the listener has nothing to report.
// A returned error or a panic is treated as a listener failure.
type Listener func(ctx context.Context, data any) (*Response, error)

// Unsubscribe removes the registration it was returned for. Calling it again is a no-op.
type Unsubscribe func()

// SubscribeFunc subscribes a listener to an event bound in advance.
type SubscribeFunc func(listener Listener, priority ...int) Unsubscribe

type Emitter interface {
	Subscribe(listener Listener, priority int, name string) Unsubscribe
	Emit(ctx context.Context, name string, data any) []Response
	EmitWithAbort(ctx context.Context, name string, data any) []Response
	Listeners(name string) int
}

type registration struct {
	listener Listener
	priority int
}

type emitter struct {
	mu        sync.RWMutex
	observers map[string][]*registration
	logger    log.Logger
}

// NewEmitter creates an emitter that reports listener failures to logger.
func NewEmitter(logger log.Logger) Emitter {
	if logger == nil {
		logger = log.NewEmptyLogger()
	}

	return &emitter{
		observers: make(map[string][]*registration),
		logger:    logger,
	}
}

// CreateSubscribeFunction binds name so callers only pass a listener and an optional priority.
func CreateSubscribeFunction(emitter Emitter, name string) SubscribeFunc {
	return func(listener Listener, priority ...int) Unsubscribe {
		p := DefaultPriority
		if len(priority) > 0 {
			p = priority[0]
		}

		return emitter.Subscribe(listener, p, name)
	}
}

func (e *emitter) Subscribe(listener Listener, priority int, name string) Unsubscribe {
	reg := &registration{
		listener: listener,
		priority: priority,
	}

	e.mu.Lock()
	current := e.observers[name]
	idx := sort.Search(len(current), func(i int) bool {
		return current[i].priority > priority
	})

	// Slices are never mutated in place: emissions hold on to the previous one.
	next := make([]*registration, 0, len(current)+1)
	next = append(next, current[:idx]...)
	next = append(next, reg)
	next = append(next, current[idx:]...)
	e.observers[name] = next
	e.mu.Unlock()

	return func() {
		e.unsubscribe(name, reg)
	}
}

func (e *emitter) unsubscribe(name string, reg *registration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	current := e.observers[name]
	for i, r := range current {
		if r != reg {
			continue
		}

		if len(current) == 1 {
			delete(e.observers, name)
			return
		}

		next := make([]*registration, 0, len(current)-1)
		next = append(next, current[:i]...)
		next = append(next, current[i+1:]...)
		e.observers[name] = next
		return
	}
}

func (e *emitter) Listeners(name string) int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.observers[name])
}

func (e *emitter) snapshot(name string) []*registration {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.observers[name]
}

// Emit runs every listener of name in priority order and collects observer responses.
// Listener failures are logged and do not stop the remaining listeners.
func (e *emitter) Emit(ctx context.Context, name string, data any) []Response {
	responses := make([]Response, 0)
	for _, reg := range e.snapshot(name) {
		res, err := e.invoke(ctx, name, reg, data)
		if err != nil {
			e.logger.Errorf("event %s listener failure: %s", name, err.Error())
			continue
		}

		if IsObserverResponse(res) {
			responses = append(responses, *res)
		}
	}

	return responses
}

// EmitWithAbort behaves like Emit but stops at the first failure or error response,
// or at the first listener failure, which is recorded as a bare error response.
func (e *emitter) EmitWithAbort(ctx context.Context, name string, data any) []Response {
	responses := make([]Response, 0)
	for _, reg := range e.snapshot(name) {
		res, err := e.invoke(ctx, name, reg, data)
		if err != nil {
			e.logger.Errorf("event %s listener failure: %s", name, err.Error())
			responses = append(responses, Response{Type: ResponseTypeError})
			return responses
		}

		if !IsObserverResponse(res) {
			continue
		}

		responses = append(responses, *res)
		if IsErrorResponse(res) || IsFailureResponse(res) {
			return responses
		}
	}

	return responses
}

func (e *emitter) invoke(ctx context.Context, name string, reg *registration, data any) (res *Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = nil
			err = &ListenerPanicError{
				Event: name,
				Value: r,
				Stack: string(debug.Stack()),
			}
		}
	}()

	if reg.listener == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilListener, name)
	}

	return reg.listener(ctx, data)
}
