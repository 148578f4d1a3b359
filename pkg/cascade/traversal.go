package cascade

import "github.com/inkwell-vtt/inkwell/pkg/model"

// walkFolders is the fallback enumeration strategy: an iterative
// depth-first walk over direct child references. It is deliberately not
// recursive so that tree depth never translates into call depth, and it
// tracks visited folder IDs so that it terminates even if the backend hands
// back a cyclic "tree". The result contains root first, then every
// reachable folder exactly once.
func walkFolders(tree Tree, root model.Folder) ([]model.Folder, error) {
	visited := map[string]bool{root.FolderID: true}
	collected := []model.Folder{root}

	stack := []model.Folder{root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, err := tree.Children(current.FolderID)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if visited[child.FolderID] {
				continue
			}
			visited[child.FolderID] = true
			collected = append(collected, child)
			stack = append(stack, child)
		}
	}

	return collected, nil
}
