package config

// ServerConfig contains server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"omitempty,gt=0"`
}

// NetworkConfig points at the station map the network model is built from
type NetworkConfig struct {
	StationMapPath string `yaml:"stationMapPath" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level"`
	FilePath string `yaml:"filePath"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server" validate:"required"`
	Network NetworkConfig `yaml:"network" validate:"required"`
	Logging LoggingConfig `yaml:"logging"`
}
