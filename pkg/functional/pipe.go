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

package functional

import "context"

type action[T any] func(ctx context.Context, input T) (T, error)

// Pipe runs actions in order, feeding each one the previous output.
type Pipe[T any] struct {
	chain []action[T]
	stop  func(T) bool
}

func NewPipe[T any]() *Pipe[T] {
	return &Pipe[T]{}
}

func (p *Pipe[T]) Next(f action[T]) *Pipe[T] {
	p.chain = append(p.chain, f)
	return p
}

// StopWhen ends the chain early once pred holds for an intermediate result.
func (p *Pipe[T]) StopWhen(pred func(T) bool) *Pipe[T] {
	p.stop = pred
	return p
}

func (p *Pipe[T]) Do(ctx context.Context, input T) (T, error) {
	res := input
	var err error
	for _, fn := range p.chain {
		res, err = fn(ctx, res)
		if err != nil {
			break
		}

		if p.stop != nil && p.stop(res) {
			break
		}
	}

	return res, err
}
