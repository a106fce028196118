package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-sphere-raytracer/pkg/log"
)

const (
	builtInGroup = "Built-in Scenes"
	fileGroup    = "Scene Files"
	filePrefix   = "file:"
)

var logger = log.New("scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`                 // Unique identifier
	Name        string `json:"name"`               // Scene name
	DisplayName string `json:"displayName"`        // UI display name
	Description string `json:"description"`        // Optional description
	Group       string `json:"group"`              // Grouping category
	Type        string `json:"type"`               // "builtin" or "file"
	FilePath    string `json:"filePath,omitempty"` // Path to the descriptor (file type only)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete scene listing
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

// ListFileScenes scans scenesDir for JSON scene descriptors. A missing
// directory yields an empty list.
func ListFileScenes(scenesDir string) ([]SceneInfo, error) {
	if scenesDir == "" {
		return []SceneInfo{}, nil
	}
	if _, err := os.Stat(scenesDir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(scenesDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := make([]SceneInfo, 0, len(files))
	for _, filePath := range files {
		sceneInfo, err := ParseDescriptorMetadata(filePath)
		if err != nil {
			logger.Warningf("failed to parse metadata for %s: %v", filePath, err)
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// ParseDescriptorMetadata reads the name, description and group of a descriptor
// without building its spheres.
func ParseDescriptorMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:          filePrefix + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       fileGroup,
		Type:        "file",
		FilePath:    filePath,
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return sceneInfo, err
	}

	var meta struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Group       string `json:"group"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return sceneInfo, fmt.Errorf("%w: %w", ErrInvalidDescriptor, err)
	}

	if meta.Name != "" {
		sceneInfo.Name = meta.Name
	}
	if meta.Group != "" {
		sceneInfo.Group = meta.Group
	}
	sceneInfo.Description = meta.Description
	sceneInfo.DisplayName = sceneInfo.Name

	return sceneInfo, nil
}

// ListAllScenes returns built-in and descriptor scenes, grouped by category
func ListAllScenes(scenesDir string) (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := ListFileScenes(scenesDir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}

	allScenes := append(BuiltInScenes(), fileScenes...)

	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtInGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if builtIns, exists := groupMap[builtInGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   builtInGroup,
			Scenes: builtIns,
		})
	}

	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{
			Name:   groupName,
			Scenes: groupMap[groupName],
		})
	}

	return response, nil
}

// titleCase converts a filename-style string to title case
// e.g., "glass-marbles" -> "Glass Marbles"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
