package report

import "encoding/json"

// Section is a report block that is either filled from API data or not
// collected yet. The two states marshal differently so a consumer can tell an
// empty result from a block that was never wired up.
type Section[T any] struct {
	populated bool
	data      T
}

// Populated wraps data that was collected for this run.
func Populated[T any](data T) Section[T] {
	return Section[T]{populated: true, data: data}
}

// NotImplemented marks a block this tool does not collect yet.
func NotImplemented[T any]() Section[T] {
	return Section[T]{}
}

func (s Section[T]) IsPopulated() bool { return s.populated }

// Data returns the wrapped value and whether the section is populated.
func (s Section[T]) Data() (T, bool) {
	return s.data, s.populated
}

type notImplementedJSON struct {
	Status string `json:"status"`
}

func (s Section[T]) MarshalJSON() ([]byte, error) {
	if !s.populated {
		return json.Marshal(notImplementedJSON{Status: "not_implemented"})
	}
	return json.Marshal(s.data)
}
