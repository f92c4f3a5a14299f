package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/platformkit/platformkit/internal/branding"
	"github.com/platformkit/platformkit/internal/project"
)

//go:embed scaffolds
var scaffoldFS embed.FS

const templatesDir = "scaffolds/project"

// Data holds all template variables available to scaffold templates.
type Data struct {
	Name           string // e.g., "my-app"
	DisplayName    string // Product name written into generated comments
	Entry          string // Entry module relative to AppPath
	AppPath        string
	ResourcesPath  string
	RuntimeVersion string // Optional; gates platforms with runtime requirements
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
	Dirs      []string
	Warnings  []string
}

// NewData creates Data with defaults populated.
func NewData(name, runtimeVersion string) *Data {
	return &Data{
		Name:           name,
		DisplayName:    branding.DisplayName(),
		Entry:          project.DefaultEntry,
		AppPath:        project.DefaultAppPath,
		ResourcesPath:  project.DefaultResourcesPath,
		RuntimeVersion: runtimeVersion,
	}
}

// resourceDirs are created under ResourcesPath, one per native project.
var resourceDirs = []string{"Android", "iOS", "visionOS"}

// Generate writes a starter project into outputDir. It refuses to
// overwrite an existing project file; other existing files are skipped
// and reported as warnings.
func Generate(outputDir string, data *Data) (*Result, error) {
	projectFile := filepath.Join(outputDir, branding.ProjectFile())
	if _, err := os.Stat(projectFile); err == nil {
		return nil, fmt.Errorf("%s already exists; remove it first", projectFile)
	}

	entries, err := fs.ReadDir(scaffoldFS, templatesDir)
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	result := &Result{OutputDir: outputDir}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		// Strip .tmpl extension for the output filename.
		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(outputDir, outName)
		if _, err := os.Stat(outPath); err == nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s exists, left unchanged", outName))
			continue
		}

		// Embedded paths are always slash-separated.
		tmplBytes, err := fs.ReadFile(scaffoldFS, templatesDir+"/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}

		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		result.Files = append(result.Files, outName)
	}

	dirs := []string{
		filepath.Join(data.AppPath, "fonts"),
		filepath.Join(data.AppPath, "assets"),
	}
	for _, d := range resourceDirs {
		dirs = append(dirs, filepath.Join(data.ResourcesPath, d))
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(outputDir, d), 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", d, err)
		}
		result.Dirs = append(result.Dirs, d)
	}

	// Validate the generated project file against JSON Schema.
	valResult, valErr := project.ValidateFile(projectFile)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate project file: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			result.Warnings = append(result.Warnings, issue.String())
		}
	}

	return result, nil
}
