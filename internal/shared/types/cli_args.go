package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile   string
	Source       string
	Categories   []string
	NoneSelected bool
	Period       string
	Interactive  bool
	Trend        bool
	Raw          bool
	ReportName   string
	ReportType   []string
	Dir          string
	PDFFont      string
	LogLevel     string
}
