package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-cards path of the local card file
//	-providers path of the provider credentials file
//	-mymemory-url base URL of the MyMemory translation API
//	-deepl-url base URL of the DeepL translation API
//	-mochi-url base URL of the Mochi flashcard API
//	-timeout outbound request timeout (e.g., "10s", "1m")
//	-c/-config yaml file path with configs
//	-setup re-run the provider setup flow
func ParseFlags() *Config {
	var cardsPath string
	var providersPath string
	var myMemoryURL string
	var deepLURL string
	var mochiURL string
	var requestTimeout time.Duration
	var yamlConfigPath string
	var runSetup bool

	flag.StringVar(&cardsPath, "cards", "", "Card file path")
	flag.StringVar(&providersPath, "providers", "", "Provider credentials file path")
	flag.StringVar(&myMemoryURL, "mymemory-url", "", "MyMemory API base URL")
	flag.StringVar(&deepLURL, "deepl-url", "", "DeepL API base URL")
	flag.StringVar(&mochiURL, "mochi-url", "", "Mochi API base URL")
	flag.DurationVar(&requestTimeout, "timeout", 0, "Request timeout (e.g., 10s, 1m)")
	flag.StringVar(&yamlConfigPath, "c", "", "YAML config file path")
	flag.StringVar(&yamlConfigPath, "config", "", "YAML config file path (alias)")
	flag.BoolVar(&runSetup, "setup", false, "Re-run provider setup")

	flag.Parse()

	return &Config{
		Adapter: Adapter{
			MyMemoryURL:    myMemoryURL,
			DeepLURL:       deepLURL,
			MochiURL:       mochiURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			CardsPath:     cardsPath,
			ProvidersPath: providersPath,
		},
		RunSetup:     runSetup,
		YAMLFilePath: yamlConfigPath,
	}
}
