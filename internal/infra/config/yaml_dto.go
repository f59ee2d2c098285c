package config

// FileName is the workspace configuration file, found at the workspace root.
const FileName = "rolodex.yaml"

// YAMLConfig mirrors rolodex.yaml. Pointer fields distinguish "absent" from
// the zero value so defaults survive partial files.
type YAMLConfig struct {
	Rolodex YAMLRolodex `yaml:"rolodex"`
}

type YAMLRolodex struct {
	Output  string      `yaml:"output"`
	Parser  YAMLParser  `yaml:"parser"`
	Logging YAMLLogging `yaml:"logging"`
}

type YAMLParser struct {
	RejectUnknownPrefixes *bool `yaml:"reject_unknown_prefixes"`
}

type YAMLLogging struct {
	Debug      *bool `yaml:"debug"`
	MaxSizeMB  *int  `yaml:"max_size_mb"`
	MaxBackups *int  `yaml:"max_backups"`
}
