package domain

const (
	DefaultInputPath  = "resume.yaml"
	DefaultOutputPath = "output/resume.pdf"
	DefaultPageSize   = "letter"
	DefaultMargin     = 36.0
)

// Config represents the resume configuration loaded from resume.config.yaml
// and RESUME_* environment variables.
type Config struct {
	Paths PathsConfig `koanf:"paths"`
	Page  PageConfig  `koanf:"page"`
	Log   LogConfig   `koanf:"log"`
}

type PathsConfig struct {
	Input  string `koanf:"input"`
	Output string `koanf:"output"`
}

// PageConfig selects the page geometry. Margin is in points and applies to
// all four sides.
type PageConfig struct {
	Size   string  `koanf:"size"`
	Margin float64 `koanf:"margin"`
}

type LogConfig struct {
	Debug bool `koanf:"debug"`
}

// DefaultConfig provides sane defaults if resume.config.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			Input:  DefaultInputPath,
			Output: DefaultOutputPath,
		},
		Page: PageConfig{
			Size:   DefaultPageSize,
			Margin: DefaultMargin,
		},
	}
}

// WorkspaceSpec describes where `resume init` scaffolds files. Force
// replaces existing files with the templates.
type WorkspaceSpec struct {
	Root  string
	Force bool
}

// ConfigFileName marks a resume workspace root.
const ConfigFileName = "resume.config.yaml"

// InitReport lists workspace-relative files written or left untouched by
// `resume init`.
type InitReport struct {
	Written []string
	Kept    []string
}
