// Package trie implements the prefix tree that the board solver co-descends
// while it walks letter paths.
package trie

import (
	"unicode"

	"github.com/rs/zerolog/log"
)

// MinWordLength is the shortest word the trie will accept. The solver reads
// this same constant when deciding whether a terminal node is worth emitting,
// so there is exactly one place this policy lives.
const MinWordLength = 3

// A Node is one letter position in the tree. Each node exclusively owns its
// children; the tree is acyclic and rooted at the Trie's root.
type Node struct {
	terminal bool
	children map[rune]*Node
}

// Child returns the child node for the given letter, or nil if no inserted
// word continues with that letter.
func (n *Node) Child(letter rune) *Node {
	return n.children[letter]
}

// Terminal returns true iff some dictionary word ends exactly at this node.
// A node can be terminal and still have children (CAT / CATS).
func (n *Node) Terminal() bool {
	return n.terminal
}

// NumChildren returns the number of distinct letters that extend this prefix.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// addChild adds a child for the letter if one does not already exist, and
// returns the created or existing node. Inserting a word twice is idempotent.
func (n *Node) addChild(letter rune, t *Trie) *Node {
	child := n.children[letter]
	if child == nil {
		if n.children == nil {
			n.children = make(map[rune]*Node)
		}
		child = &Node{}
		n.children[letter] = child
		t.allocNodes++
	}
	return child
}

// A Trie owns the root node of the prefix tree. It is built once from a word
// list and is read-only afterward, so a single trie may back any number of
// sequential searches.
type Trie struct {
	root       *Node
	allocNodes int
	numWords   int
}

// NewTrie builds a trie from the given word list. Words shorter than
// MinWordLength are skipped in their entirety before any letter touches the
// tree. Every rune is uppercased on the way in; beyond that, runes are used
// verbatim as keys, so a word list containing digits or punctuation inserts
// those characters literally (they will simply never match a letter board).
func NewTrie(words []string) *Trie {
	t := &Trie{root: &Node{}}
	for _, word := range words {
		t.addWord(word)
	}
	log.Debug().
		Int("words", t.numWords).
		Int("nodes", t.allocNodes).
		Msg("built trie")
	return t
}

// Root returns the node representing the empty prefix. The root is never
// terminal since the empty string is shorter than MinWordLength.
func (t *Trie) Root() *Node {
	return t.root
}

// NumWords returns the number of distinct words inserted.
func (t *Trie) NumWords() int {
	return t.numWords
}

// NumNodes returns the number of nodes allocated below the root.
func (t *Trie) NumNodes() int {
	return t.allocNodes
}

func (t *Trie) addWord(word string) {
	runes := []rune(word)
	if len(runes) < MinWordLength {
		return
	}
	st := t.root
	for _, r := range runes {
		st = st.addChild(unicode.ToUpper(r), t)
	}
	if !st.terminal {
		st.terminal = true
		t.numWords++
	}
}
