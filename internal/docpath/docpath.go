package docpath

import (
	"fmt"
	"reflect"
)

// MaxPadding is how many nil entries a single write may append to a sequence
// before reaching its index.
const MaxPadding = 1024

// Get returns the value at path in document, or defaultValue when the path
// cannot be parsed or does not resolve. It never modifies document.
func Get(document any, path string, defaultValue any) any {
	p, err := Parse(path)
	if err != nil {
		return defaultValue
	}
	return p.Get(document, defaultValue)
}

// Set returns a deep copy of document with value stored at path. Missing
// intermediate containers are created: a sequence when the following token is
// an index, otherwise a mapping. document itself is never modified.
func Set(document any, path string, value any) (any, error) {
	p, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return p.Set(document, value)
}

// Has reports whether path resolves to a location in document.
func Has(document any, path string) bool {
	p, err := Parse(path)
	if err != nil {
		return false
	}
	_, ok := p.lookup(document)
	return ok
}

// Get walks the path from document and returns the value found there, or
// defaultValue as soon as a step cannot be followed.
func (p Path) Get(document any, defaultValue any) any {
	v, ok := p.lookup(document)
	if !ok {
		return defaultValue
	}
	return v
}

// Set is the parsed-path form of the package-level Set.
func (p Path) Set(document any, value any) (any, error) {
	if len(p) == 0 {
		return nil, &PathError{Path: p.String(), Cause: ErrEmptyPath}
	}
	return p.assign(Clone(document), 0, value)
}

func (p Path) lookup(document any) (any, bool) {
	current := document
	for _, tok := range p {
		if current == nil {
			return nil, false
		}
		next, ok := child(current, tok)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func child(node any, tok Token) (any, bool) {
	switch c := node.(type) {
	case map[string]any:
		if tok.Kind != KeyToken {
			return nil, false
		}
		v, ok := c[tok.Key]
		return v, ok
	case []any:
		if tok.Kind != IndexToken || tok.Index >= len(c) {
			return nil, false
		}
		return c[tok.Index], true
	}

	rv := reflect.ValueOf(node)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if tok.Kind != KeyToken || rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := rv.MapIndex(reflect.ValueOf(tok.Key).Convert(rv.Type().Key()))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Slice, reflect.Array:
		if tok.Kind != IndexToken || tok.Index >= rv.Len() {
			return nil, false
		}
		return rv.Index(tok.Index).Interface(), true
	}
	return nil, false
}

// assign stores value below node, which is already a private copy, and returns
// the node to keep in its parent. Growing a slice yields a new header, so
// parents always re-store what assign returns.
func (p Path) assign(node any, i int, value any) (any, error) {
	tok := p[i]
	last := i == len(p)-1

	if node == nil {
		if tok.Kind == IndexToken {
			node = []any{}
		} else {
			node = map[string]any{}
		}
	}

	switch c := node.(type) {
	case map[string]any:
		if tok.Kind != KeyToken {
			return nil, p.conflict(i, "index used on a mapping")
		}
		if c == nil {
			c = map[string]any{}
		}
		if last {
			c[tok.Key] = value
			return c, nil
		}
		next, err := p.assign(c[tok.Key], i+1, value)
		if err != nil {
			return nil, err
		}
		c[tok.Key] = next
		return c, nil

	case []any:
		if tok.Kind != IndexToken {
			return nil, p.conflict(i, "key used on a sequence")
		}
		if err := p.checkGrowth(i, len(c)); err != nil {
			return nil, err
		}
		if tok.Index >= len(c) {
			c = append(c, make([]any, tok.Index-len(c)+1)...)
		}
		if last {
			c[tok.Index] = value
			return c, nil
		}
		next, err := p.assign(c[tok.Index], i+1, value)
		if err != nil {
			return nil, err
		}
		c[tok.Index] = next
		return c, nil
	}

	return p.assignReflect(node, i, value)
}

// assignReflect handles typed containers such as map[string]string or []string.
func (p Path) assignReflect(node any, i int, value any) (any, error) {
	tok := p[i]
	last := i == len(p)-1
	rv := reflect.ValueOf(node)

	switch rv.Kind() {
	case reflect.Map:
		if tok.Kind != KeyToken || rv.Type().Key().Kind() != reflect.String {
			return nil, p.conflict(i, "index used on a mapping")
		}
		if rv.IsNil() {
			rv = reflect.MakeMap(rv.Type())
		}
		key := reflect.ValueOf(tok.Key).Convert(rv.Type().Key())
		next := value
		if !last {
			var current any
			if mv := rv.MapIndex(key); mv.IsValid() {
				current = mv.Interface()
			}
			v, err := p.assign(current, i+1, value)
			if err != nil {
				return nil, err
			}
			next = v
		}
		ev, ok := assignable(next, rv.Type().Elem())
		if !ok {
			return nil, p.conflict(i, "value does not fit the mapping's element type")
		}
		rv.SetMapIndex(key, ev)
		return rv.Interface(), nil

	case reflect.Slice:
		if tok.Kind != IndexToken {
			return nil, p.conflict(i, "key used on a sequence")
		}
		if err := p.checkGrowth(i, rv.Len()); err != nil {
			return nil, err
		}
		if tok.Index >= rv.Len() {
			rv = reflect.AppendSlice(rv, reflect.MakeSlice(rv.Type(), tok.Index-rv.Len()+1, tok.Index-rv.Len()+1))
		}
		next := value
		if !last {
			v, err := p.assign(rv.Index(tok.Index).Interface(), i+1, value)
			if err != nil {
				return nil, err
			}
			next = v
		}
		ev, ok := assignable(next, rv.Type().Elem())
		if !ok {
			return nil, p.conflict(i, "value does not fit the sequence's element type")
		}
		rv.Index(tok.Index).Set(ev)
		return rv.Interface(), nil
	}

	return nil, p.conflict(i, "existing value is not a container")
}

func assignable(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Map, reflect.Slice, reflect.Pointer:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	return rv, true
}

func (p Path) checkGrowth(i, length int) error {
	if p[i].Index-length <= MaxPadding {
		return nil
	}
	return &PathError{
		Path:    p.String(),
		Message: fmt.Sprintf("at %s: sequence has %d entries", p[:i+1].String(), length),
		Cause:   ErrIndexOutOfRange,
	}
}

func (p Path) conflict(i int, msg string) *PathError {
	return &PathError{
		Path:    p.String(),
		Message: "at " + p[:i+1].String() + ": " + msg,
		Cause:   ErrPathConflict,
	}
}
