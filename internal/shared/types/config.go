package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Source     string   `json:"source" yaml:"source" toml:"source"`
	Categories []string `json:"categories" yaml:"categories" toml:"categories"`
	Period     string   `json:"period" yaml:"period" toml:"period"`
	ReportName string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir        string   `json:"dir" yaml:"dir" toml:"dir"`
	PDFFont    string   `json:"pdf_font" yaml:"pdf_font" toml:"pdf_font"`
	Trend      bool     `json:"trend" yaml:"trend" toml:"trend"`
	Raw        bool     `json:"raw" yaml:"raw" toml:"raw"`
	LogLevel   string   `json:"log_level" yaml:"log_level" toml:"log_level"`
}
