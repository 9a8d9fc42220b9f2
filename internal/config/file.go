package config

// File is the YAML layout of the configuration file.
type File struct {
	Server ServerSection `yaml:"server"`
	Login  LoginSection  `yaml:"login"`
	HTTP   HTTPSection   `yaml:"http"`
	Cache  CacheSection  `yaml:"cache"`
	UI     UISection     `yaml:"ui"`
}

// ServerSection holds the catalog addresses.
type ServerSection struct {
	Default string `yaml:"default"`
	Remote  string `yaml:"remote"`
}

// LoginSection holds login prompt settings.
type LoginSection struct {
	DefaultUsername string `yaml:"default_username"`
}

// HTTPSection holds transport settings. Durations use Go syntax ("30s").
type HTTPSection struct {
	Timeout   string  `yaml:"timeout"`
	RateLimit float64 `yaml:"rate_limit"`
	RateBurst int     `yaml:"rate_burst"`
}

// CacheSection holds product cache settings.
type CacheSection struct {
	TTL      string `yaml:"ttl"`
	Capacity int    `yaml:"capacity"`
}

// UISection holds presentation settings.
type UISection struct {
	Banner bool `yaml:"banner"`
}

// File returns s in its on-disk layout.
func (s *Settings) File() File {
	return File{
		Server: ServerSection{Default: s.DefaultURL, Remote: s.RemoteURL},
		Login:  LoginSection{DefaultUsername: s.DefaultUsername},
		HTTP: HTTPSection{
			Timeout:   s.HTTPTimeout.String(),
			RateLimit: s.RateLimit,
			RateBurst: s.RateBurst,
		},
		Cache: CacheSection{TTL: s.CacheTTL.String(), Capacity: s.CacheCapacity},
		UI:    UISection{Banner: s.Banner},
	}
}
