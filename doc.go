// Package flex provides a flexbox layout engine for Go.
//
// Build a tree of [Node] values, each carrying a [Style], and call
// [Calculate] with the available size. Every node's Layout.Frame then holds
// its position and size relative to its parent.
//
//	root := flex.NewNode(flex.DefaultStyle())
//	root.Style.Direction = flex.Row
//	child := flex.NewNode(flex.DefaultStyle())
//	child.Style.FlexGrow = 1
//	root.AddChild(child)
//	flex.Calculate(root, 300, 200)
//
// Nodes track whether they need layout. Mutating a node through its setters
// marks it and its ancestors dirty, and clean subtrees are skipped on the
// next pass.
package flex
