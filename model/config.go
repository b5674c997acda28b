package model

// Config lists the server configuration files a feature pack assembles.
type Config struct {
	Standalone []ConfigFile
	Domain     []ConfigFile
	Host       []ConfigFile
}

// ConfigFile describes one generated server configuration file: the
// template it starts from, the subsystems file merged into it and the
// output path inside the distribution.
type ConfigFile struct {
	Template   string
	Subsystems string
	OutputFile string
	Properties map[string]string
}

// Files returns all configuration files, standalone first, then domain, then host.
func (c *Config) Files() []ConfigFile {
	files := make([]ConfigFile, 0, len(c.Standalone)+len(c.Domain)+len(c.Host))
	files = append(files, c.Standalone...)
	files = append(files, c.Domain...)
	return append(files, c.Host...)
}
