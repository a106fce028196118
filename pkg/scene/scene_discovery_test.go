package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"glass-marbles", "Glass Marbles"},
		{"mirror_hall", "Mirror Hall"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func writeSceneFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestParseDescriptorMetadata(t *testing.T) {
	dir := t.TempDir()

	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name:    "complete_metadata.json",
			content: `{"name": "Mirror Hall", "description": "Facing mirrors", "group": "Mirrors", "spheres": []}`,
			expected: SceneInfo{
				ID:          "file:complete_metadata",
				Name:        "Mirror Hall",
				DisplayName: "Mirror Hall",
				Description: "Facing mirrors",
				Group:       "Mirrors",
				Type:        "file",
			},
		},
		{
			name:    "no-metadata.json",
			content: `{"spheres": []}`,
			expected: SceneInfo{
				ID:          "file:no-metadata",
				Name:        "No Metadata",
				DisplayName: "No Metadata",
				Group:       "Scene Files",
				Type:        "file",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeSceneFile(t, dir, tc.name, tc.content)
			tc.expected.FilePath = path

			result, err := ParseDescriptorMetadata(path)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if result != tc.expected {
				t.Errorf("Expected %+v, got %+v", tc.expected, result)
			}
		})
	}
}

func TestListFileScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "zeta.json", `{"name": "Zeta", "spheres": []}`)
	writeSceneFile(t, dir, "alpha.json", `{"name": "Alpha", "spheres": []}`)
	writeSceneFile(t, dir, "broken.json", `{not json`)
	writeSceneFile(t, dir, "notes.txt", `ignored`)

	scenes, err := ListFileScenes(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes (broken file skipped), got %d: %+v", len(scenes), scenes)
	}
	if scenes[0].DisplayName != "Alpha" || scenes[1].DisplayName != "Zeta" {
		t.Errorf("Expected scenes sorted by display name, got %q, %q", scenes[0].DisplayName, scenes[1].DisplayName)
	}
}

func TestListFileScenes_MissingDirectory(t *testing.T) {
	scenes, err := ListFileScenes(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(scenes) != 0 {
		t.Errorf("Expected no scenes, got %d", len(scenes))
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "mirrors.json", `{"name": "Mirrors", "group": "A Group", "spheres": []}`)
	writeSceneFile(t, dir, "plain.json", `{"spheres": []}`)

	response, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(response.Groups) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(response.Groups))
	}

	expectedGroups := []string{"Built-in Scenes", "A Group", "Scene Files"}
	for i, name := range expectedGroups {
		if response.Groups[i].Name != name {
			t.Errorf("Group %d: expected %q, got %q", i, name, response.Groups[i].Name)
		}
	}

	builtIns := response.Groups[0].Scenes
	if len(builtIns) != 3 || builtIns[0].ID != "default" || builtIns[0].Type != "builtin" {
		t.Errorf("Unexpected built-in scenes: %+v", builtIns)
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeSceneFile(t, dir, "single.json",
		`{"spheres": [{"center": [0,0,-1], "radius": 0.5, "material": {"type": "glass", "ior": 1.5}}]}`)

	s, err := Resolve("file:single", dir, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 sphere, got %d", s.Len())
	}

	s, err = Resolve("three-spheres", dir, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.Name != "three-spheres" {
		t.Errorf("Expected built-in scene, got %q", s.Name)
	}

	if _, err := Resolve("file:absent", dir, 0); err == nil {
		t.Error("Expected error for unknown file scene")
	}
}
