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

package events_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woocommerce/checkout-events/pkg/events"
	"github.com/woocommerce/checkout-events/pkg/log"
)

type recordingLogger struct {
	log.EmptyLogger
	mu     sync.Mutex
	errors []string
}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func recorder(calls *[]string, name string, res *events.Response) events.Listener {
	return func(ctx context.Context, data any) (*events.Response, error) {
		*calls = append(*calls, name)
		return res, nil
	}
}

func TestEmitOrdering(t *testing.T) {
	emitter := events.NewEmitter(log.NewEmptyLogger())
	var calls []string

	emitter.Subscribe(recorder(&calls, "A", nil), 10, "test")
	emitter.Subscribe(recorder(&calls, "B", nil), 5, "test")
	emitter.Subscribe(recorder(&calls, "C", nil), 10, "test")

	t.Run("lower priority runs first and ties keep registration order", func(t *testing.T) {
		emitter.Emit(context.Background(), "test", nil)
		assert.Equal(t, []string{"B", "A", "C"}, calls)
	})

	t.Run("repeated emissions keep the same order", func(t *testing.T) {
		calls = nil
		emitter.EmitWithAbort(context.Background(), "test", nil)
		assert.Equal(t, []string{"B", "A", "C"}, calls)
	})

	t.Run("negative priorities run before the default", func(t *testing.T) {
		calls = nil
		emitter.Subscribe(recorder(&calls, "D", nil), -1, "test")
		emitter.Emit(context.Background(), "test", nil)
		assert.Equal(t, []string{"D", "B", "A", "C"}, calls)
	})
}

func TestEmitPayload(t *testing.T) {
	emitter := events.NewEmitter(log.NewEmptyLogger())
	var order []string
	var received []any

	emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
		order = append(order, "cb1")
		received = append(received, data)
		return nil, nil
	}, 10, "test")
	emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
		order = append(order, "cb2")
		received = append(received, data)
		return nil, nil
	}, 5, "test")

	assert.NotPanics(t, func() {
		emitter.Emit(context.Background(), "test", "payload")
	})
	assert.Equal(t, []string{"cb2", "cb1"}, order)
	assert.Equal(t, []any{"payload", "payload"}, received)
}

func TestEmitIsolation(t *testing.T) {
	logger := &recordingLogger{}
	emitter := events.NewEmitter(logger)
	called := false

	emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
		return nil, errors.New("broken observer")
	}, 1, "test")
	emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
		panic("exploded")
	}, 2, "test")
	emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
		called = true
		return events.NewSuccessResponse(nil), nil
	}, 3, "test")

	responses := emitter.Emit(context.Background(), "test", nil)

	assert.True(t, called)
	assert.Equal(t, []events.Response{{Type: events.ResponseTypeSuccess}}, responses)
	assert.Len(t, logger.errors, 2)
}

func TestEmitCollectsAllResponses(t *testing.T) {
	emitter := events.NewEmitter(log.NewEmptyLogger())
	var calls []string

	emitter.Subscribe(recorder(&calls, "fail", events.NewFailureResponse("nope", "checkout")), 1, "test")
	emitter.Subscribe(recorder(&calls, "error", events.NewErrorResponse("bad", "checkout")), 2, "test")
	emitter.Subscribe(recorder(&calls, "ok", events.NewSuccessResponse(nil)), 3, "test")

	responses := emitter.Emit(context.Background(), "test", nil)

	assert.Equal(t, []string{"fail", "error", "ok"}, calls)
	require.Len(t, responses, 3)
	assert.Equal(t, events.ResponseTypeFailure, responses[0].Type)
	assert.Equal(t, events.ResponseTypeError, responses[1].Type)
	assert.Equal(t, events.ResponseTypeSuccess, responses[2].Type)
}

func TestEmitWithAbort(t *testing.T) {
	t.Run("stops on error response", func(t *testing.T) {
		emitter := events.NewEmitter(log.NewEmptyLogger())
		spy := false
		emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
			return &events.Response{Type: events.ResponseTypeError}, nil
		}, 10, "test")
		emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
			spy = true
			return nil, nil
		}, 10, "test")

		responses := emitter.EmitWithAbort(context.Background(), "test", nil)

		assert.False(t, spy)
		assert.Equal(t, []events.Response{{Type: events.ResponseTypeError}}, responses)
	})

	t.Run("stops on failure response", func(t *testing.T) {
		emitter := events.NewEmitter(log.NewEmptyLogger())
		spy := false
		emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
			return events.NewSuccessResponse(nil), nil
		}, 1, "test")
		emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
			return events.NewFailureResponse("declined", "payments"), nil
		}, 2, "test")
		emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
			spy = true
			return nil, nil
		}, 3, "test")

		responses := emitter.EmitWithAbort(context.Background(), "test", nil)

		assert.False(t, spy)
		require.Len(t, responses, 2)
		assert.Equal(t, events.ResponseTypeSuccess, responses[0].Type)
		assert.Equal(t, "declined", responses[1].Message)
	})

	t.Run("stops on listener error with a bare error response", func(t *testing.T) {
		logger := &recordingLogger{}
		emitter := events.NewEmitter(logger)
		spy := false
		emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
			return nil, errors.New("rejected")
		}, 10, "test")
		emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
			spy = true
			return nil, nil
		}, 10, "test")

		responses := emitter.EmitWithAbort(context.Background(), "test", nil)

		assert.False(t, spy)
		assert.Equal(t, []events.Response{{Type: events.ResponseTypeError}}, responses)
		assert.Len(t, logger.errors, 1)
	})

	t.Run("stops on listener panic", func(t *testing.T) {
		emitter := events.NewEmitter(log.NewEmptyLogger())
		spy := false
		emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
			panic(errors.New("thrown"))
		}, 10, "test")
		emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
			spy = true
			return nil, nil
		}, 10, "test")

		responses := emitter.EmitWithAbort(context.Background(), "test", nil)

		assert.False(t, spy)
		assert.Equal(t, []events.Response{{Type: events.ResponseTypeError}}, responses)
	})

	t.Run("runs every listener when all succeed", func(t *testing.T) {
		emitter := events.NewEmitter(log.NewEmptyLogger())
		var calls []string
		emitter.Subscribe(recorder(&calls, "a", events.NewSuccessResponse(nil)), 10, "test")
		emitter.Subscribe(recorder(&calls, "b", nil), 10, "test")
		emitter.Subscribe(recorder(&calls, "c", events.NewSuccessResponse(map[string]any{"k": "v"})), 10, "test")

		responses := emitter.EmitWithAbort(context.Background(), "test", nil)

		assert.Equal(t, []string{"a", "b", "c"}, calls)
		require.Len(t, responses, 2)
		assert.Equal(t, "v", responses[1].Meta["k"])
	})
}

func TestNonResponsePassthrough(t *testing.T) {
	emitter := events.NewEmitter(log.NewEmptyLogger())
	emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
		return nil, nil
	}, 10, "test")
	emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
		return &events.Response{Type: "unknown"}, nil
	}, 10, "test")
	emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
		return &events.Response{Message: "no type"}, nil
	}, 10, "test")

	assert.Empty(t, emitter.Emit(context.Background(), "test", nil))
	assert.Empty(t, emitter.EmitWithAbort(context.Background(), "test", nil))
}

func TestUnsubscribe(t *testing.T) {
	t.Run("removes only its own registration", func(t *testing.T) {
		emitter := events.NewEmitter(log.NewEmptyLogger())
		var calls []string

		unsubA := emitter.Subscribe(recorder(&calls, "A", nil), 10, "test")
		emitter.Subscribe(recorder(&calls, "B", nil), 10, "test")

		unsubA()
		assert.NotPanics(t, func() { unsubA() })

		emitter.Emit(context.Background(), "test", nil)
		assert.Equal(t, []string{"B"}, calls)
		assert.Equal(t, 1, emitter.Listeners("test"))
	})

	t.Run("same listener registered twice", func(t *testing.T) {
		emitter := events.NewEmitter(log.NewEmptyLogger())
		var calls []string
		listener := recorder(&calls, "L", nil)

		unsub := emitter.Subscribe(listener, 10, "test")
		emitter.Subscribe(listener, 10, "test")
		unsub()

		emitter.Emit(context.Background(), "test", nil)
		assert.Equal(t, []string{"L"}, calls)
	})

	t.Run("after the list was mutated", func(t *testing.T) {
		emitter := events.NewEmitter(log.NewEmptyLogger())
		var calls []string

		unsub := emitter.Subscribe(recorder(&calls, "A", nil), 10, "test")
		emitter.Subscribe(recorder(&calls, "B", nil), 1, "test")
		emitter.Subscribe(recorder(&calls, "C", nil), 20, "test")
		unsub()

		emitter.Emit(context.Background(), "test", nil)
		assert.Equal(t, []string{"B", "C"}, calls)
	})
}

func TestMultipleEventsIndependence(t *testing.T) {
	emitter := events.NewEmitter(log.NewEmptyLogger())
	var calls []string

	emitter.Subscribe(recorder(&calls, "a", nil), 10, "a")
	emitter.Subscribe(recorder(&calls, "b", nil), 10, "b")

	emitter.Emit(context.Background(), "a", nil)
	assert.Equal(t, []string{"a"}, calls)
	assert.Empty(t, emitter.Emit(context.Background(), "missing", nil))
}

func TestEmissionSnapshot(t *testing.T) {
	emitter := events.NewEmitter(log.NewEmptyLogger())
	var calls []string

	emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
		calls = append(calls, "first")
		emitter.Subscribe(recorder(&calls, "late", nil), 1, "test")
		return nil, nil
	}, 0, "test")
	unsub := emitter.Subscribe(recorder(&calls, "removed", nil), 5, "test")
	emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
		calls = append(calls, "second")
		unsub()
		return nil, nil
	}, 2, "test")

	emitter.Emit(context.Background(), "test", nil)
	assert.Equal(t, []string{"first", "second", "removed"}, calls)

	t.Run("mutations are visible to later emissions", func(t *testing.T) {
		calls = nil
		emitter.Emit(context.Background(), "test", nil)
		assert.Equal(t, []string{"first", "late", "second"}, calls)
	})
}

func TestNestedEmit(t *testing.T) {
	emitter := events.NewEmitter(log.NewEmptyLogger())
	var calls []string

	emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
		calls = append(calls, "outer")
		emitter.Emit(ctx, "inner", nil)
		return events.NewSuccessResponse(nil), nil
	}, 10, "outer")
	emitter.Subscribe(recorder(&calls, "inner", nil), 10, "inner")

	responses := emitter.EmitWithAbort(context.Background(), "outer", nil)

	assert.Equal(t, []string{"outer", "inner"}, calls)
	assert.Len(t, responses, 1)
}

func TestCreateSubscribeFunction(t *testing.T) {
	emitter := events.NewEmitter(log.NewEmptyLogger())
	onTest := events.CreateSubscribeFunction(emitter, "test")
	var calls []string

	onTest(recorder(&calls, "default", nil))
	onTest(recorder(&calls, "early", nil), 1)
	unsub := onTest(recorder(&calls, "late", nil), 11)
	unsub()

	emitter.Emit(context.Background(), "test", nil)
	assert.Equal(t, []string{"early", "default"}, calls)
}

func TestConcurrentSubscribeAndEmit(t *testing.T) {
	emitter := events.NewEmitter(log.NewEmptyLogger())
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(p int) {
			defer wg.Done()
			unsub := emitter.Subscribe(func(ctx context.Context, data any) (*events.Response, error) {
				return events.NewSuccessResponse(nil), nil
			}, p, "test")
			if p%2 == 0 {
				unsub()
			}
		}(i)
		go func() {
			defer wg.Done()
			emitter.Emit(context.Background(), "test", nil)
		}()
	}

	wg.Wait()
	assert.Equal(t, 25, emitter.Listeners("test"))
}
