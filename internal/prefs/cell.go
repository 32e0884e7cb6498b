package prefs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

// Codec converts cell values to and from their stored text form.
type Codec[T any] interface {
	Encode(T) (string, error)
	Decode(string) (T, error)
}

// FloatCodec stores numbers as plain decimal text.
type FloatCodec struct{}

func (FloatCodec) Encode(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("cannot store non-finite value %v", v)
	}
	return strconv.FormatFloat(v, 'f', -1, 64), nil
}

func (FloatCodec) Decode(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("stored value %q is not finite", s)
	}
	return v, nil
}

// StringCodec stores strings verbatim. Blank values are rejected so an
// emptied slot falls back to the default.
type StringCodec struct{}

func (StringCodec) Encode(v string) (string, error) {
	return v, nil
}

func (StringCodec) Decode(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("empty value")
	}
	return s, nil
}

// ErrorHandler receives write-through failures. They never reach Set callers.
type ErrorHandler func(key string, err error)

// CellOption configures a Cell.
type CellOption func(*cellOptions)

type cellOptions struct {
	onError ErrorHandler
}

// WithErrorHandler reports write failures to fn.
func WithErrorHandler(fn ErrorHandler) CellOption {
	return func(o *cellOptions) {
		o.onError = fn
	}
}

// Cell is one named, typed slot with an in-memory cache and best-effort
// write-through to its Store.
type Cell[T any] struct {
	mu      sync.RWMutex
	store   Store
	key     string
	def     T
	value   T
	codec   Codec[T]
	onError ErrorHandler
}

// NewCell reads key from store. An absent or undecodable value, or a nil
// store, yields def.
func NewCell[T any](store Store, key string, def T, codec Codec[T], opts ...CellOption) *Cell[T] {
	var o cellOptions
	for _, opt := range opts {
		opt(&o)
	}

	c := &Cell[T]{store: store, key: key, def: def, value: def, codec: codec, onError: o.onError}
	if store == nil {
		return c
	}
	if raw, ok := store.Get(key); ok {
		if v, err := codec.Decode(raw); err == nil {
			c.value = v
		}
	}
	return c
}

// NewFloatCell is NewCell with FloatCodec.
func NewFloatCell(store Store, key string, def float64, opts ...CellOption) *Cell[float64] {
	return NewCell[float64](store, key, def, FloatCodec{}, opts...)
}

// NewStringCell is NewCell with StringCodec.
func NewStringCell(store Store, key string, def string, opts ...CellOption) *Cell[string] {
	return NewCell[string](store, key, def, StringCodec{}, opts...)
}

// Key returns the storage key.
func (c *Cell[T]) Key() string {
	return c.key
}

// Default returns the compiled-in default.
func (c *Cell[T]) Default() T {
	return c.def
}

// Get returns the current in-memory value.
func (c *Cell[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// Set updates the in-memory value and writes it through to the store.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	c.mu.Unlock()

	if c.store == nil {
		return
	}
	raw, err := c.codec.Encode(v)
	if err == nil {
		err = c.store.Set(c.key, raw)
	}
	if err != nil && c.onError != nil {
		c.onError(c.key, err)
	}
}

// Reset restores the default value.
func (c *Cell[T]) Reset() {
	c.Set(c.def)
}
