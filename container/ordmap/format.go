package ordmap

import (
	"encoding/json"
	"fmt"
	"strings"
)

// String returns the string representation of tree, drawing its shape top to bottom.
// Ref: std fmt.Stringer.
func (t *Tree[K, V]) String() string {
	var buf strings.Builder
	buf.WriteString("RedBlackTree\n")
	t.write(&buf, t.root, "", true)
	return buf.String()
}

// write writes the structure of subtree with node x as the root to buffer buf.
func (t *Tree[K, V]) write(buf *strings.Builder, x *Node[K, V], prefix string, tail bool) {
	if x == nil {
		return
	}
	if x.right != nil {
		newPrefix := prefix
		if tail {
			newPrefix += "│   "
		} else {
			newPrefix += "    "
		}
		t.write(buf, x.right, newPrefix, false)
	}
	buf.WriteString(prefix)
	if tail {
		buf.WriteString("└── ")
	} else {
		buf.WriteString("┌── ")
	}
	c := "b"
	if x.color == red {
		c = "r"
	}
	fmt.Fprintf(buf, "%v:%v[%s]\n", x.key, x.Value, c)
	if x.left != nil {
		newPrefix := prefix
		if tail {
			newPrefix += "    "
		} else {
			newPrefix += "│   "
		}
		t.write(buf, x.left, newPrefix, true)
	}
}

// MarshalJSON marshals tree into valid JSON.
// Ref: std json.Marshaler.
func (t *Tree[K, V]) MarshalJSON() ([]byte, error) {
	m := make(map[K]V, t.size)
	t.Range(func(k K, v V) bool {
		m[k] = v
		return true
	})
	return json.Marshal(m)
}

// UnmarshalJSON unmarshals a JSON description of tree.
// The input can be assumed to be a valid encoding of a JSON value.
// UnmarshalJSON must copy the JSON data if it wishes to retain the data after returning.
// Ref: std json.Unmarshaler.
func (t *Tree[K, V]) UnmarshalJSON(data []byte) error {
	var m map[K]V
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	t.Clear()
	for k, v := range m {
		t.Insert(k, v)
	}
	return nil
}
