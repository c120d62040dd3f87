package jsondiff

import (
	"fmt"
	"strings"
)

// Key is one segment of a Path: either an object field or an array index.
type Key struct {
	field   string
	index   int
	isField bool
}

// FieldKey creates a Key for an object field.
func FieldKey(name string) Key {
	return Key{field: name, isField: true}
}

// IndexKey creates a Key for an array index.
func IndexKey(idx int) Key {
	return Key{index: idx}
}

// IsField reports whether the key addresses an object field.
func (k Key) IsField() bool {
	return k.isField
}

// Field returns the field name. It is empty for index keys.
func (k Key) Field() string {
	return k.field
}

// Index returns the array index. It is zero for field keys.
func (k Key) Index() int {
	return k.index
}

func (k Key) String() string {
	if k.isField {
		return "." + k.field
	}

	return fmt.Sprintf("[%d]", k.index)
}

// Path points at one location inside a JSON document.
type Path []Key

func (p Path) String() string {
	if len(p) == 0 {
		return "(root)"
	}

	var b strings.Builder
	for _, k := range p {
		b.WriteString(k.String())
	}

	return b.String()
}

// extend returns a new path with key appended. The receiver is copied so
// sibling branches of the walk never share backing storage.
func (p Path) extend(k Key) Path {
	next := make(Path, len(p)+1)
	copy(next, p)
	next[len(p)] = k

	return next
}
