package project

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/piwi3910/WallPanel/internal/model"
)

// FileExtension is the extension of saved project files.
const FileExtension = ".wallpanel"

// SaveProject writes a project, including its last result, to path.
// The extension is added when missing.
func SaveProject(path string, proj model.Project) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), FileExtension) {
		path += FileExtension
	}
	if err := writeJSON(path, proj); err != nil {
		return "", fmt.Errorf("failed to save project: %w", err)
	}
	return path, nil
}

// LoadProject reads a project file. Fields missing from the file take the
// values of DefaultRequest.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project: %w", err)
	}
	proj := model.Project{Request: model.DefaultRequest()}
	if err := json.Unmarshal(data, &proj); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project %s: %w", path, err)
	}
	if proj.Name == "" {
		proj.Name = "Untitled"
	}
	return proj, nil
}
