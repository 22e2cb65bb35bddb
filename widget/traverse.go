// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/traverse.go
// Summary: Cursor-based pre-order and post-order walks with one pruned subtree.
// Usage: Pass the previous result back as cur; nil restarts. Walks hold no
// state, so several may run over the same tree at once.

package widget

import "iter"

// FirstPreOrder returns root unless it is pruned.
func FirstPreOrder(root, prune Widget) Widget {
	if root == nil || root == prune {
		return nil
	}
	return root
}

// NextPreOrder returns the node visited after cur in a pre-order walk of
// root, skipping prune and everything below it.
func NextPreOrder(root, cur, prune Widget) Widget {
	if cur == nil {
		return FirstPreOrder(root, prune)
	}
	if c := cur.FirstChild(prune); c != nil {
		return c
	}
	for node := cur; node != root; {
		parent := node.Embedded().Parent()
		if parent == nil {
			return nil
		}
		if sib := parent.NextChild(node, prune); sib != nil {
			return sib
		}
		node = parent
	}
	return nil
}

// FirstPostOrder returns the deepest first-child chain end under root.
func FirstPostOrder(root, prune Widget) Widget {
	if root == nil || root == prune {
		return nil
	}
	return leftmostLeaf(root, prune)
}

// NextPostOrder returns the node visited after cur in a post-order walk of
// root, skipping prune and everything below it.
func NextPostOrder(root, cur, prune Widget) Widget {
	if cur == nil {
		return FirstPostOrder(root, prune)
	}
	if cur == root {
		return nil
	}
	parent := cur.Embedded().Parent()
	if parent == nil {
		return nil
	}
	if sib := parent.NextChild(cur, prune); sib != nil {
		return leftmostLeaf(sib, prune)
	}
	return parent
}

func leftmostLeaf(w, prune Widget) Widget {
	for {
		c := w.FirstChild(prune)
		if c == nil {
			return w
		}
		w = c
	}
}

// PreOrder ranges over root's tree parents first.
func PreOrder(root, prune Widget) iter.Seq[Widget] {
	return func(yield func(Widget) bool) {
		for w := FirstPreOrder(root, prune); w != nil; w = NextPreOrder(root, w, prune) {
			if !yield(w) {
				return
			}
		}
	}
}

// PostOrder ranges over root's tree children first.
func PostOrder(root, prune Widget) iter.Seq[Widget] {
	return func(yield func(Widget) bool) {
		for w := FirstPostOrder(root, prune); w != nil; w = NextPostOrder(root, w, prune) {
			if !yield(w) {
				return
			}
		}
	}
}
