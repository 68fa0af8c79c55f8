package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0,lte=65535"`
}

// InputConfig names where the network and the trace come from. A GTFS zip
// replaces the edge file, GTFS-Realtime feeds replace the trace file.
type InputConfig struct {
	Network   string   `yaml:"network"`
	Trace     string   `yaml:"trace"`
	GTFS      string   `yaml:"gtfs"`
	GTFSRoute string   `yaml:"gtfsRoute"`
	GTFSRT    []string `yaml:"gtfsrt" validate:"dive,required"`
	Vehicle   string   `yaml:"vehicle"`
	TimeoutMS int      `yaml:"timeoutMS" validate:"gte=0"`
}

// OutputConfig contains output configuration
type OutputConfig struct {
	Path   string `yaml:"path" validate:"required"`
	Format string `yaml:"format" validate:"oneof=text json geojson"`
	SVG    string `yaml:"svg"`
}

// SnapConfig tunes the matcher. Zero workers means one per CPU.
type SnapConfig struct {
	Workers int `yaml:"workers" validate:"gte=0"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Snap    SnapConfig    `yaml:"snap"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the configuration used when nothing else is given.
func Default() AppConfig {
	return AppConfig{
		Server:  ServerConfig{Port: 16181},
		Input:   InputConfig{Network: "edges.csv", Trace: "trace.csv", TimeoutMS: 10000},
		Output:  OutputConfig{Path: "matched.txt", Format: "text"},
		Logging: LoggingConfig{Level: "info"},
	}
}
