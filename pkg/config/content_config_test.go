package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/decker502/showcase/pkg/embedded"
	"gopkg.in/yaml.v3"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "#7c3aed", want: RGB{R: 124, G: 58, B: 237}},
		{in: "14b8a6", want: RGB{R: 20, G: 184, B: 166}},
		{in: " #10B981 ", want: RGB{R: 16, G: 185, B: 129}},
		{in: "#fff", want: RGB{R: 255, G: 255, B: 255}},
		{in: "#0f8", want: RGB{R: 0, G: 255, B: 136}},
		{in: "#zzzzzz", wantErr: true},
		{in: "#12345", wantErr: true},
		{in: "#7c3aed00", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHexColor(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestRGBYAMLRoundTrip(t *testing.T) {
	type wrapper struct {
		Theme RGB `yaml:"theme"`
	}
	out, err := yaml.Marshal(wrapper{Theme: RGB{R: 124, G: 58, B: 237}})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if !strings.Contains(string(out), "#7c3aed") {
		t.Errorf("expected hex color in output, got %s", out)
	}
}

func TestRGBWithAlpha(t *testing.T) {
	c := RGB{R: 20, G: 184, B: 166}.WithAlpha(0.5)
	if c.R != 20 || c.G != 184 || c.B != 166 {
		t.Errorf("color channels changed: %+v", c)
	}
	if c.A != 127 {
		t.Errorf("alpha: got %d, want 127", c.A)
	}
	if (RGB{}).WithAlpha(2).A != 255 {
		t.Error("alpha above 1 should clamp to 255")
	}
	if (RGB{R: 255}).WithAlpha(-1).A != 0 {
		t.Error("alpha below 0 should clamp to 0")
	}
}

func TestRGBColorful(t *testing.T) {
	c := RGB{R: 124, G: 58, B: 237}
	if got := c.Colorful().Hex(); got != "#7c3aed" {
		t.Errorf("Colorful().Hex() = %q, want #7c3aed", got)
	}
	r, g, b := c.Colorful().RGB255()
	if r != c.R || g != c.G || b != c.B {
		t.Errorf("RGB255() = (%d, %d, %d), want %+v", r, g, b, c)
	}
}

func TestParseSiteContent(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
	}{
		{
			name: "minimal valid",
			yamlContent: `
slides:
  - title: One
    theme: "#7c3aed"
`,
		},
		{
			name:        "no slides",
			yamlContent: "brand: x\n",
			wantErr:     true,
			errContains: "slides cannot be empty",
		},
		{
			name: "slide without title",
			yamlContent: `
slides:
  - description: untitled
`,
			wantErr:     true,
			errContains: "title cannot be empty",
		},
		{
			name: "bad theme color",
			yamlContent: `
slides:
  - title: One
    theme: purple
`,
			wantErr:     true,
			errContains: "invalid color",
		},
		{
			name: "missing theme color",
			yamlContent: `
slides:
  - title: One
`,
			wantErr:     true,
			errContains: "theme color is required",
		},
		{
			name: "reserved project category",
			yamlContent: `
slides:
  - title: One
    theme: "#7c3aed"
projects:
  - title: P
    category: All
`,
			wantErr:     true,
			errContains: "reserved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSiteContent([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestProjectCategories(t *testing.T) {
	content := &SiteContent{
		Projects: []Project{
			{Title: "a", Category: "Websites"},
			{Title: "b", Category: "Games"},
			{Title: "c", Category: "Websites"},
		},
	}
	want := []string{"All", "Websites", "Games"}
	if got := content.ProjectCategories(); !reflect.DeepEqual(got, want) {
		t.Errorf("ProjectCategories() = %v, want %v", got, want)
	}
}

func TestLoadSiteContentFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	if err := os.WriteFile(path, []byte("slides:\n  - title: Only\n    theme: \"#101010\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	content, err := LoadSiteContentFile(path)
	if err != nil {
		t.Fatalf("LoadSiteContentFile() error: %v", err)
	}
	if len(content.Slides) != 1 || content.Slides[0].Title != "Only" {
		t.Errorf("unexpected slides: %+v", content.Slides)
	}

	if _, err := LoadSiteContentFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestLoadShippedContent 校验随程序发布的 data/content.yaml
func TestLoadShippedContent(t *testing.T) {
	embedded.InitFromDir("../..")
	defer embedded.Reset()

	content, err := LoadSiteContent(ContentConfigPath)
	if err != nil {
		t.Fatalf("LoadSiteContent() error: %v", err)
	}

	if len(content.Slides) != 3 {
		t.Fatalf("expected 3 slides, got %d", len(content.Slides))
	}
	wantThemes := []RGB{{124, 58, 237}, {20, 184, 166}, {16, 185, 129}}
	for i, want := range wantThemes {
		if content.Slides[i].Theme != want {
			t.Errorf("slide %d theme: got %+v, want %+v", i, content.Slides[i].Theme, want)
		}
	}
	if len(content.Services) != 4 || len(content.Process) != 6 || len(content.TechTabs) != 4 {
		t.Errorf("unexpected section sizes: services=%d process=%d tabs=%d",
			len(content.Services), len(content.Process), len(content.TechTabs))
	}
}
