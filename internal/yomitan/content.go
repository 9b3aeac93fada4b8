package yomitan

import "encoding/json"

// Node is one structured-content element: bare text when Tag is empty,
// otherwise a tagged element wrapping its children.
type Node struct {
	Tag      string
	Text     string
	Children []*Node
}

// TextNode returns a bare text node.
func TextNode(text string) *Node {
	return &Node{Text: text}
}

// Elem returns an element node with the given tag and children.
func Elem(tag string, children ...*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

// MarshalJSON renders the node in the structured-content schema: text nodes
// become JSON strings, elements become {"tag": ..., "content": ...} where a
// single child is inlined and multiple children form an array.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.Tag == "" {
		return json.Marshal(n.Text)
	}

	var content any
	switch len(n.Children) {
	case 0:
		content = ""
	case 1:
		content = n.Children[0]
	default:
		content = n.Children
	}

	return json.Marshal(struct {
		Tag     string `json:"tag"`
		Content any    `json:"content"`
	}{n.Tag, content})
}

// Definition is one glossary item: plain text, or a structured-content tree.
type Definition struct {
	Text    string
	Content *Node
}

// Text returns a plain-text definition.
func Text(s string) Definition {
	return Definition{Text: s}
}

// Structured returns a structured-content definition rooted at the given node.
func Structured(root *Node) Definition {
	return Definition{Content: root}
}

func (d Definition) MarshalJSON() ([]byte, error) {
	if d.Content != nil {
		return json.Marshal(struct {
			Type    string `json:"type"`
			Content *Node  `json:"content"`
		}{"structured-content", d.Content})
	}
	return json.Marshal(d.Text)
}
