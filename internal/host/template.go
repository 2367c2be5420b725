package host

// TemplateRef identifies one reusable overlay definition in the library.
type TemplateRef struct {
	ID   string
	Name string
}

// TemplateFolder is one level of the library's folder tree. Templates and
// Folders preserve the host's own ordering; lookup order matters because
// name collisions are resolved by traversal order, not by any ranking.
type TemplateFolder struct {
	Name      string
	Templates []TemplateRef
	Folders   []*TemplateFolder
}

// Component is one node of an overlay instance's composition graph.
type Component struct {
	ID         string
	Name       string
	Attributes []TextAttribute
}

// TextAttribute describes a text-capable input on a component. Visible
// mirrors the authoring-time hint; a hidden attribute usually means the
// template does not actually render that input.
type TextAttribute struct {
	Name    string
	Visible bool
}
