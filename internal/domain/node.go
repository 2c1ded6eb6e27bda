package domain

import "path"

// Node is one labeled entry of a directory tree shown to the user.
type Node struct {
	Name     string
	Children []*Node
}

func NewNode(name string, children ...*Node) *Node {
	return &Node{Name: name, Children: children}
}

func (node *Node) Add(children ...*Node) *Node {
	node.Children = append(node.Children, children...)
	return node
}

func (node *Node) IsLeaf() bool {
	return node == nil || len(node.Children) == 0
}

type FlatNode struct {
	Node  *Node
	Depth int
}

// Flatten walks the tree depth-first in child order.
func (node *Node) Flatten() []FlatNode {
	if node == nil {
		return nil
	}
	flat := []FlatNode{}
	appendFlat(&flat, node, 0)
	return flat
}

func appendFlat(flat *[]FlatNode, node *Node, depth int) {
	*flat = append(*flat, FlatNode{Node: node, Depth: depth})
	for _, child := range node.Children {
		appendFlat(flat, child, depth+1)
	}
}

// LeafPaths returns slash-joined paths from the root to each leaf.
func (node *Node) LeafPaths() []string {
	if node == nil {
		return nil
	}
	paths := []string{}
	collectLeaves(&paths, node, node.Name)
	return paths
}

func collectLeaves(paths *[]string, node *Node, prefix string) {
	if node.IsLeaf() {
		*paths = append(*paths, prefix)
		return
	}
	for _, child := range node.Children {
		collectLeaves(paths, child, path.Join(prefix, child.Name))
	}
}
