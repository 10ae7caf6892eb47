package config

type Config struct {
	Path       string   `json:"path"`
	ShowHidden bool     `json:"showHidden"`
	MaxDepth   int      `json:"maxDepth"`
	MaxEntries int      `json:"maxEntries"`
	Workers    int      `json:"workers"`
	Exclusions []string `json:"exclusions"`
}

type fileConfig struct {
	Path       *string  `json:"path"`
	ShowHidden *bool    `json:"showHidden"`
	MaxDepth   *int     `json:"maxDepth"`
	MaxEntries *int     `json:"maxEntries"`
	Workers    *int     `json:"workers"`
	Exclusions []string `json:"exclusions"`
}
