package yomitan

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Node is a structured-content tree node: Text, List or *Element.
type Node interface {
	node()
}

// Text is a leaf.
type Text string

// List is an ordered sequence of children.
type List []Node

// Element is a tagged node with metadata and one content child (which may
// itself be a List). Content is nil for empty elements such as <br>.
type Element struct {
	Tag     string
	Data    map[string]string
	Content Node
}

func (Text) node()     {}
func (List) node()     {}
func (*Element) node() {}

// Walk visits n and its descendants depth first. Returning false from visit
// skips the node's children.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	switch v := n.(type) {
	case List:
		for _, c := range v {
			Walk(c, visit)
		}
	case *Element:
		Walk(v.Content, visit)
	}
}

// Leaves returns every text leaf under n in order.
func Leaves(n Node) []string {
	var out []string
	Walk(n, func(c Node) bool {
		if t, ok := c.(Text); ok && t != "" {
			out = append(out, string(t))
		}
		return true
	})
	return out
}

// Collect returns the leaves of every outermost element matching match, one
// slice per element. Matching elements are not searched further.
func Collect(n Node, match func(*Element) bool) [][]string {
	var groups [][]string
	Walk(n, func(c Node) bool {
		el, ok := c.(*Element)
		if !ok || !match(el) {
			return true
		}
		if leaves := Leaves(el.Content); len(leaves) > 0 {
			groups = append(groups, leaves)
		}
		return false
	})
	return groups
}

// DecodeNode parses a structured-content value.
func DecodeNode(raw json.RawMessage) (Node, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return Text(s), nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
		list := make(List, 0, len(items))
		for _, item := range items {
			child, err := DecodeNode(item)
			if err != nil {
				return nil, err
			}
			if child != nil {
				list = append(list, child)
			}
		}
		return list, nil
	case '{':
		var obj struct {
			Tag     string          `json:"tag"`
			Data    map[string]any  `json:"data"`
			Content json.RawMessage `json:"content"`
		}
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, err
		}
		el := &Element{Tag: obj.Tag}
		if len(obj.Data) > 0 {
			el.Data = make(map[string]string, len(obj.Data))
			for k, v := range obj.Data {
				if s, ok := v.(string); ok {
					el.Data[k] = s
				}
			}
		}
		content, err := DecodeNode(obj.Content)
		if err != nil {
			return nil, err
		}
		el.Content = content
		return el, nil
	default:
		// numbers and booleans do not occur as content; keep them as text
		return Text(string(raw)), nil
	}
}

func isGlossary(el *Element) bool {
	return el.Data["content"] == "glossary"
}

// decodeGlossaryItem turns one term-bank glossary item into meaning groups.
func decodeGlossaryItem(raw json.RawMessage) ([][]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		if s == "" {
			return nil, nil
		}
		return [][]string{{s}}, nil
	}
	if raw[0] != '{' {
		return nil, fmt.Errorf("unexpected glossary item %s", raw)
	}

	var item struct {
		Type    string          `json:"type"`
		Text    string          `json:"text"`
		Content json.RawMessage `json:"content"`
	}
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, err
	}
	switch item.Type {
	case "text":
		if item.Text == "" {
			return nil, nil
		}
		return [][]string{{item.Text}}, nil
	case "structured-content":
		root, err := DecodeNode(item.Content)
		if err != nil {
			return nil, err
		}
		return Collect(root, isGlossary), nil
	default:
		// images and unknown types carry no meaning text
		return nil, nil
	}
}
