package systems

import (
	"errors"
	"testing"

	"github.com/decker502/showcase/pkg/config"
)

func testContent() *config.SiteContent {
	return &config.SiteContent{
		Projects: []config.Project{
			{Title: "Shop", Category: "Websites"},
			{Title: "Inventory", Category: "Software"},
			{Title: "Shooter", Category: "Games"},
			{Title: "Portfolio", Category: "Websites"},
		},
		TechTabs: []config.TechTab{
			{Name: "Game Development"},
			{Name: "Web Development"},
			{Name: "Digital Marketing"},
		},
	}
}

func TestGallerySystem_Filter(t *testing.T) {
	gs := NewGallerySystem(testContent())

	if gs.Category() != "All" {
		t.Fatalf("initial Category() = %q, want All", gs.Category())
	}
	if got := len(gs.Filtered()); got != 4 {
		t.Errorf("All filter returned %d projects, want 4", got)
	}

	tests := []struct {
		category string
		want     []string
	}{
		{"Websites", []string{"Shop", "Portfolio"}},
		{"Software", []string{"Inventory"}},
		{"Games", []string{"Shooter"}},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if err := gs.SetCategory(tt.category); err != nil {
				t.Fatalf("SetCategory() error = %v", err)
			}
			got := gs.Filtered()
			if len(got) != len(tt.want) {
				t.Fatalf("Filtered() = %d projects, want %d", len(got), len(tt.want))
			}
			for i, p := range got {
				if p.Title != tt.want[i] {
					t.Errorf("Filtered()[%d] = %q, want %q", i, p.Title, tt.want[i])
				}
			}
		})
	}
}

func TestGallerySystem_FilteredIndices(t *testing.T) {
	gs := NewGallerySystem(testContent())
	_ = gs.SetCategory("Websites")
	got := gs.FilteredIndices()
	if len(got) != 2 || got[0] != 0 || got[1] != 3 {
		t.Errorf("FilteredIndices() = %v, want [0 3]", got)
	}
}

func TestGallerySystem_UnknownCategory(t *testing.T) {
	gs := NewGallerySystem(testContent())
	_ = gs.SetCategory("Games")

	err := gs.SetCategory("Mobile")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("SetCategory(Mobile) error = %v, want ErrUnknownCategory", err)
	}
	if gs.Category() != "Games" {
		t.Errorf("Category() = %q after rejected change, want Games", gs.Category())
	}
}

func TestGallerySystem_NextCategoryWraps(t *testing.T) {
	gs := NewGallerySystem(testContent())
	want := []string{"Websites", "Software", "Games", "All"}
	for _, w := range want {
		if got := gs.NextCategory(); got != w {
			t.Errorf("NextCategory() = %q, want %q", got, w)
		}
	}
}

func TestGallerySystem_Tabs(t *testing.T) {
	gs := NewGallerySystem(testContent())
	if gs.ActiveTab() != 0 {
		t.Fatalf("initial ActiveTab() = %d, want 0", gs.ActiveTab())
	}
	if gs.NextTab() != 1 || gs.NextTab() != 2 || gs.NextTab() != 0 {
		t.Error("NextTab did not cycle 1, 2, 0")
	}
	gs.SetTab(-1)
	if gs.ActiveTab() != 2 {
		t.Errorf("SetTab(-1) = %d, want 2", gs.ActiveTab())
	}

	empty := NewGallerySystem(&config.SiteContent{})
	empty.SetTab(3)
	empty.NextTab()
	if empty.ActiveTab() != 0 {
		t.Errorf("ActiveTab() with no tabs = %d, want 0", empty.ActiveTab())
	}
}
