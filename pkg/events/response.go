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

// ResponseType is the discriminant of an observer response.
type ResponseType string

const (
	ResponseTypeSuccess ResponseType = "success"
	ResponseTypeFailure ResponseType = "failure"
	ResponseTypeError   ResponseType = "error"
)

// Valid reports whether t is one of the recognized response kinds.
func (t ResponseType) Valid() bool {
	switch t {
	case ResponseTypeSuccess, ResponseTypeFailure, ResponseTypeError:
		return true
	default:
		return false
	}
}

// Response is a structured value a listener may return.
type Response struct {
	Type           ResponseType   `json:"type" mapstructure:"type" msgpack:"type"`
	Message        string         `json:"message,omitempty" mapstructure:"message" msgpack:"message,omitempty"`
	MessageContext string         `json:"messageContext,omitempty" mapstructure:"messageContext" msgpack:"messageContext,omitempty"`
	Retry          *bool          `json:"retry,omitempty" mapstructure:"retry" msgpack:"retry,omitempty"`
	Meta           map[string]any `json:"meta,omitempty" mapstructure:"meta" msgpack:"meta,omitempty"`
}

// NewSuccessResponse builds a success response carrying optional meta.
func NewSuccessResponse(meta map[string]any) *Response {
	return &Response{
		Type: ResponseTypeSuccess,
		Meta: meta,
	}
}

// NewFailureResponse builds a failure response shown in the given notice context.
func NewFailureResponse(message, context string) *Response {
	return &Response{
		Type:           ResponseTypeFailure,
		Message:        message,
		MessageContext: context,
	}
}

// NewErrorResponse builds an error response shown in the given notice context.
func NewErrorResponse(message, context string) *Response {
	return &Response{
		Type:           ResponseTypeError,
		Message:        message,
		MessageContext: context,
	}
}

// WithRetry sets whether the caller may retry after this response.
func (r *Response) WithRetry(retry bool) *Response {
	r.Retry = &retry
	return r
}

// ShouldRetry defaults to true unless retry was explicitly disabled.
func (r Response) ShouldRetry() bool {
	return r.Retry == nil || *r.Retry
}

func IsObserverResponse(r *Response) bool {
	return r != nil && r.Type.Valid()
}

func IsSuccessResponse(r *Response) bool {
	return r != nil && r.Type == ResponseTypeSuccess
}

func IsFailureResponse(r *Response) bool {
	return r != nil && r.Type == ResponseTypeFailure
}

func IsErrorResponse(r *Response) bool {
	return r != nil && r.Type == ResponseTypeError
}

// HasFailure reports whether any of the responses is a failure or an error.
func HasFailure(responses []Response) bool {
	for i := range responses {
		if IsFailureResponse(&responses[i]) || IsErrorResponse(&responses[i]) {
			return true
		}
	}

	return false
}
