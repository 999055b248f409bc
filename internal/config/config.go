package config

type HTTPConfig struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allow_origins"`
}

type StoreConfig struct {
	// Dir holds one JSON file per saved brief.
	Dir string `yaml:"dir"`
}

type Config struct {
	Env   string      `yaml:"env"`
	HTTP  HTTPConfig  `yaml:"http"`
	Store StoreConfig `yaml:"store"`
}
