package placement

import "titlesync/internal/host"

// ResolveTemplate finds a template by exact name anywhere in the library
// tree. Traversal is depth-first: a folder's own templates are checked
// before its subfolders, each in host order, and the first hit short-
// circuits the search.
func ResolveTemplate(root *host.TemplateFolder, name string) (host.TemplateRef, bool) {
	if root == nil {
		return host.TemplateRef{}, false
	}
	for _, tmpl := range root.Templates {
		if tmpl.Name == name {
			return tmpl, true
		}
	}
	for _, folder := range root.Folders {
		if tmpl, ok := ResolveTemplate(folder, name); ok {
			return tmpl, true
		}
	}
	return host.TemplateRef{}, false
}
