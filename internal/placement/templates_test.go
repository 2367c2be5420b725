package placement

import (
	"testing"

	"titlesync/internal/host"
)

func libraryFixture() *host.TemplateFolder {
	return &host.TemplateFolder{
		Name: "Library",
		Templates: []host.TemplateRef{
			{ID: "root-a", Name: "StyleA"},
		},
		Folders: []*host.TemplateFolder{
			{
				Name: "Titles",
				Templates: []host.TemplateRef{
					{ID: "titles-a", Name: "StyleA"},
					{ID: "titles-b", Name: "StyleB"},
				},
				Folders: []*host.TemplateFolder{
					{
						Name:      "Nested",
						Templates: []host.TemplateRef{{ID: "nested-c", Name: "StyleC"}},
					},
				},
			},
			{
				Name:      "Late",
				Templates: []host.TemplateRef{{ID: "late-c", Name: "StyleC"}},
			},
		},
	}
}

func TestResolveTemplate(t *testing.T) {
	lib := libraryFixture()

	cases := []struct {
		name     string
		template string
		wantID   string
		wantOK   bool
	}{
		{"root beats folder on collision", "StyleA", "root-a", true},
		{"found in folder", "StyleB", "titles-b", true},
		{"depth-first beats sibling order", "StyleC", "nested-c", true},
		{"missing", "StyleZ", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ref, ok := ResolveTemplate(lib, tc.template)
			if ok != tc.wantOK || ref.ID != tc.wantID {
				t.Fatalf("ResolveTemplate(%q) = (%+v, %v), want (%q, %v)", tc.template, ref, ok, tc.wantID, tc.wantOK)
			}
		})
	}
}

func TestResolveTemplateNilRoot(t *testing.T) {
	if _, ok := ResolveTemplate(nil, "StyleA"); ok {
		t.Fatal("expected no match on nil library")
	}
}
