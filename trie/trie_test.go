package trie

import (
	"testing"

	"github.com/matryer/is"
)

// walk follows the given letters from the root, returning the final node or
// nil if the path does not exist.
func walk(t *Trie, letters string) *Node {
	st := t.Root()
	for _, r := range letters {
		st = st.Child(r)
		if st == nil {
			return nil
		}
	}
	return st
}

func TestBuild(t *testing.T) {
	is := is.New(t)
	tr := NewTrie([]string{"cat", "cats", "dog"})

	is.Equal(tr.NumWords(), 3)
	// CAT and CATS share a path; C-A-T-S + D-O-G = 7 nodes.
	is.Equal(tr.NumNodes(), 7)
	is.True(!tr.Root().Terminal())

	cat := walk(tr, "CAT")
	is.True(cat != nil)
	is.True(cat.Terminal())
	// CAT is both a word and a prefix of CATS.
	is.Equal(cat.NumChildren(), 1)

	cats := walk(tr, "CATS")
	is.True(cats.Terminal())
	is.Equal(cats.NumChildren(), 0)
}

func TestShortWordsSkippedEntirely(t *testing.T) {
	is := is.New(t)
	tr := NewTrie([]string{"at", "to", "i"})

	is.Equal(tr.NumWords(), 0)
	is.Equal(tr.NumNodes(), 0)
	// Not even the first letter of a short word may touch the tree.
	is.Equal(tr.Root().Child('A'), (*Node)(nil))
	is.Equal(tr.Root().Child('T'), (*Node)(nil))
}

func TestDuplicatesIdempotent(t *testing.T) {
	is := is.New(t)
	tr := NewTrie([]string{"dog", "DOG", "Dog"})

	is.Equal(tr.NumWords(), 1)
	is.Equal(tr.NumNodes(), 3)
}

func TestEmptyDictionary(t *testing.T) {
	is := is.New(t)
	tr := NewTrie(nil)

	is.Equal(tr.NumWords(), 0)
	is.Equal(tr.Root().NumChildren(), 0)
}

func TestNonAlphabeticKeysInsertedVerbatim(t *testing.T) {
	is := is.New(t)
	tr := NewTrie([]string{"a-b", "c4t"})

	is.True(walk(tr, "A-B") != nil)
	is.True(walk(tr, "A-B").Terminal())
	is.True(walk(tr, "C4T").Terminal())
}
