package domain

// OutputFormat selects how the CLI renders parsed commands.
type OutputFormat string

const (
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
)

// Config represents the Rolodex configuration loaded from rolodex.yaml.
type Config struct {
	Output  OutputFormat
	Parser  ParserConfig
	Logging LoggingConfig
}

type ParserConfig struct {
	// RejectUnknownPrefixes makes targeted commands (delete, edit, note,
	// deadline, rate, help) fail on a command line prefix they do not take.
	RejectUnknownPrefixes bool
}

type LoggingConfig struct {
	Debug      bool
	MaxSizeMB  int
	MaxBackups int
}

// DefaultConfig provides sane defaults if rolodex.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Output: OutputYAML,
		Parser: ParserConfig{RejectUnknownPrefixes: true},
		Logging: LoggingConfig{
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

// WorkspaceSpec describes where `rolodex init` should scaffold a workspace.
type WorkspaceSpec struct {
	Root string
}
