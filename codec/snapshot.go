// file: radix/codec/snapshot.go
package codec

import (
	"fmt"
	"io"

	"github.com/rskv-p/radix/pkg/x_radix"
)

// ----------------------------------------------------
// Snapshot format
// ----------------------------------------------------

// Entry is a single key/value pair in a snapshot.
type Entry[T any] struct {
	Key   string `json:"key"`
	Value T      `json:"value"`
}

// Snapshot is the serialized form of a tree's live contents. Only
// entries are written; node structure and tombstones are not, Import
// rebuilds compression from scratch.
type Snapshot[T any] struct {
	Entries []Entry[T] `json:"entries"`
}

// Validate rejects snapshots with empty keys before they reach Insert.
func (s *Snapshot[T]) Validate() error {
	for _, e := range s.Entries {
		if e.Key == "" {
			return fmt.Errorf("snapshot entry: %w", x_radix.ErrEmptyKey)
		}
	}
	return nil
}

// ----------------------------------------------------
// Export / Import
// ----------------------------------------------------

// Export writes the live entries of t as a JSON snapshot.
func Export[T any](w io.Writer, t *x_radix.RadixTree[T]) error {
	var s Snapshot[T]
	t.Walk(func(key string, val *T) bool {
		s.Entries = append(s.Entries, Entry[T]{Key: key, Value: *val})
		return true
	})
	data, err := Marshal(&s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// Import rebuilds a tree from a snapshot produced by Export. A
// snapshot holding the same key twice surfaces ErrDuplicateKey.
func Import[T any](r io.Reader) (*x_radix.RadixTree[T], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var s Snapshot[T]
	if err := Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	t := x_radix.New[T]()
	for _, e := range s.Entries {
		if err := t.Insert(e.Key, e.Value); err != nil {
			return nil, fmt.Errorf("import %q: %w", e.Key, err)
		}
	}
	return t, nil
}
