package project

// Project is the base build description shared by every platform build.
type Project struct {
	Name           string            `yaml:"name" json:"name"`
	Entry          string            `yaml:"entry,omitempty" json:"entry,omitempty"`
	AppPath        string            `yaml:"app_path,omitempty" json:"app_path,omitempty"`
	ResourcesPath  string            `yaml:"resources_path,omitempty" json:"resources_path,omitempty"`
	OutputPath     string            `yaml:"output_path,omitempty" json:"output_path,omitempty"`
	RuntimeVersion string            `yaml:"runtime_version,omitempty" json:"runtime_version,omitempty"`
	Extensions     []string          `yaml:"extensions,omitempty" json:"extensions,omitempty"`
	Platforms      []PlatformDecl    `yaml:"platforms,omitempty" json:"platforms,omitempty"`
	Defines        map[string]string `yaml:"defines,omitempty" json:"defines,omitempty"`
	Aliases        map[string]string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	Copy           []CopyRule        `yaml:"copy,omitempty" json:"copy,omitempty"`
	Externals      []string          `yaml:"externals,omitempty" json:"externals,omitempty"`
	TSConfig       string            `yaml:"tsconfig,omitempty" json:"tsconfig,omitempty"`

	// Root is the directory containing the project file. Set by Load.
	Root string `yaml:"-" json:"-"`
}

// PlatformDecl registers an extra platform or adjusts a built-in one.
type PlatformDecl struct {
	Name     string `yaml:"name" json:"name"`
	Alias    string `yaml:"alias,omitempty" json:"alias,omitempty"`
	Requires string `yaml:"requires,omitempty" json:"requires,omitempty"`
}

// CopyRule copies matching files from the app directory into the output.
type CopyRule struct {
	From   string   `yaml:"from" json:"from"`
	To     string   `yaml:"to,omitempty" json:"to,omitempty"`
	Ignore []string `yaml:"ignore,omitempty" json:"ignore,omitempty"`
}

// Defaults applied when the project file leaves a field empty.
const (
	DefaultAppPath       = "app"
	DefaultResourcesPath = "App_Resources"
	DefaultOutputPath    = "dist"
	DefaultEntry         = "./app.ts"
	DefaultTSConfig      = "tsconfig.json"
)

// DefaultCopy is used when the project declares no copy rules.
var DefaultCopy = []CopyRule{
	{From: "fonts/**"},
	{From: "**/*.+(jpg|png)"},
	{From: "assets/**"},
}

func (p *Project) withDefaults() {
	if p.AppPath == "" {
		p.AppPath = DefaultAppPath
	}
	if p.ResourcesPath == "" {
		p.ResourcesPath = DefaultResourcesPath
	}
	if p.OutputPath == "" {
		p.OutputPath = DefaultOutputPath
	}
	if p.Entry == "" {
		p.Entry = DefaultEntry
	}
	if p.TSConfig == "" {
		p.TSConfig = DefaultTSConfig
	}
	if len(p.Copy) == 0 {
		p.Copy = append([]CopyRule(nil), DefaultCopy...)
	}
}
