package cascade

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-vtt/inkwell/pkg/model"
)

func collectIDs(folders []model.Folder) []string {
	ids := make([]string, len(folders))
	for i, f := range folders {
		ids[i] = f.FolderID
	}
	return ids
}

func TestWalkFolders(t *testing.T) {
	tests := []struct {
		name     string
		children map[string][]model.Folder
		expected []string // expected set, root first not required beyond index 0
	}{
		{
			name:     "single folder",
			children: map[string][]model.Folder{},
			expected: []string{"root"},
		},
		{
			name: "linear chain",
			children: map[string][]model.Folder{
				"root": {folderRef("a", "root")},
				"a":    {folderRef("b", "a")},
				"b":    {folderRef("c", "b")},
			},
			expected: []string{"root", "a", "b", "c"},
		},
		{
			name: "branching tree",
			children: map[string][]model.Folder{
				"root": {folderRef("a", "root"), folderRef("b", "root")},
				"a":    {folderRef("a1", "a"), folderRef("a2", "a")},
				"b":    {folderRef("b1", "b")},
			},
			expected: []string{"root", "a", "b", "a1", "a2", "b1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := &fakeTree{children: tt.children}
			collected, err := walkFolders(tree, folderRef("root", ""))

			require.NoError(t, err)
			assert.ElementsMatch(t, tt.expected, collectIDs(collected))
			assert.Equal(t, "root", collected[0].FolderID)
		})
	}
}

func TestWalkFoldersMatchesPrimaryEnumeration(t *testing.T) {
	tree := &fakeTree{
		children: map[string][]model.Folder{
			"root": {folderRef("a", "root"), folderRef("b", "root")},
			"a":    {folderRef("a1", "a")},
			"a1":   {folderRef("a1x", "a1"), folderRef("a1y", "a1")},
			"b":    {folderRef("b1", "b"), folderRef("b2", "b")},
		},
	}
	root := folderRef("root", "")

	walked, err := walkFolders(tree, root)
	require.NoError(t, err)

	descendants, err := tree.Descendants(root.FolderID)
	require.NoError(t, err)
	primary := append([]model.Folder{root}, descendants...)

	assert.ElementsMatch(t, collectIDs(primary), collectIDs(walked))
}

func TestWalkFoldersDeepTree(t *testing.T) {
	// Deep enough that a recursive walk would be risky; the iterative walk
	// must not care.
	children := make(map[string][]model.Folder)
	parent := "root"
	for i := 0; i < 10000; i++ {
		id := fmt.Sprintf("f%d", i)
		children[parent] = []model.Folder{folderRef(id, parent)}
		parent = id
	}

	tree := &fakeTree{children: children}
	collected, err := walkFolders(tree, folderRef("root", ""))

	require.NoError(t, err)
	assert.Len(t, collected, 10001)
}

func TestWalkFoldersTerminatesOnCycle(t *testing.T) {
	// The host guarantees no cycles, but the walk must terminate anyway if
	// that guarantee is ever violated.
	tree := &fakeTree{
		children: map[string][]model.Folder{
			"root": {folderRef("a", "root")},
			"a":    {folderRef("b", "a")},
			"b":    {folderRef("root", "b"), folderRef("a", "b")},
		},
	}

	collected, err := walkFolders(tree, folderRef("root", ""))

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"root", "a", "b"}, collectIDs(collected))
}

func TestWalkFoldersNoDuplicatesOnDiamond(t *testing.T) {
	// Two parents pointing at one child must still collect the child once.
	shared := folderRef("shared", "a")
	tree := &fakeTree{
		children: map[string][]model.Folder{
			"root": {folderRef("a", "root"), folderRef("b", "root")},
			"a":    {shared},
			"b":    {shared},
		},
	}

	collected, err := walkFolders(tree, folderRef("root", ""))

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"root", "a", "b", "shared"}, collectIDs(collected))
}
