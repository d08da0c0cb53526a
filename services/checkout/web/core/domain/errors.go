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

package domain

import (
	"errors"
	"fmt"
)

var ErrResultNotFound = errors.New("checkout result not found")

type InvalidModelFieldError struct {
	Model  string
	Field  string
	Reason string
}

func (e *InvalidModelFieldError) Error() string {
	return fmt.Sprintf("invalid %s field %s. Reason: %s", e.Model, e.Field, e.Reason)
}
