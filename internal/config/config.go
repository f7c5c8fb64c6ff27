package config

import (
	"strings"

	"github.com/spf13/viper"
)

const ENV_PREFIX = "SAVE_ABIS"

const (
	Debug           = "debug"
	ContinueOnError = "continue-on-error"

	PrometheusEnabled  = "prometheus.enabled"
	PrometheusTextfile = "prometheus.textfile"

	DataDogStatsdEnabled    = "datadog.statsd.enabled"
	DataDogStatsdUrl        = "datadog.statsd.url"
	DataDogStatsdSampleRate = "datadog.statsd.sample-rate"
)

// Artifacts are read from <ArtifactDir>/<name>.sol/<name>.json and the ABIs
// are written to <OutputDir>/<name>.json. Neither is exposed as a flag.
const (
	DefaultArtifactDir = "out"
	DefaultOutputDir   = "."
)

var DefaultContracts = []string{
	"AeraVaultV2",
	"AeraVaultAssetRegistry",
	"AeraVaultHooks",
}

type Config struct {
	Debug            bool
	ContinueOnError  bool
	Contracts        []string
	ArtifactDir      string
	OutputDir        string
	PrometheusConfig PrometheusConfig
	DataDogConfig    DataDogConfig
}

type PrometheusConfig struct {
	Enabled  bool
	Textfile string
}

type DataDogConfig struct {
	StatsdConfig StatsdConfig
}

type StatsdConfig struct {
	Enabled    bool
	Url        string
	SampleRate float64
}

func NewConfig() *Config {
	contracts := make([]string, len(DefaultContracts))
	copy(contracts, DefaultContracts)

	return &Config{
		Debug:           viper.GetBool(normalizeFlagName(Debug)),
		ContinueOnError: viper.GetBool(normalizeFlagName(ContinueOnError)),
		Contracts:       contracts,
		ArtifactDir:     DefaultArtifactDir,
		OutputDir:       DefaultOutputDir,

		PrometheusConfig: PrometheusConfig{
			Enabled:  viper.GetBool(normalizeFlagName(PrometheusEnabled)),
			Textfile: viper.GetString(normalizeFlagName(PrometheusTextfile)),
		},

		DataDogConfig: DataDogConfig{
			StatsdConfig: StatsdConfig{
				Enabled:    viper.GetBool(normalizeFlagName(DataDogStatsdEnabled)),
				Url:        viper.GetString(normalizeFlagName(DataDogStatsdUrl)),
				SampleRate: viper.GetFloat64(normalizeFlagName(DataDogStatsdSampleRate)),
			},
		},
	}
}

// KebabToSnakeCase converts a flag name like "datadog.statsd.sample-rate"
// to the viper key "datadog.statsd.sample_rate".
func KebabToSnakeCase(str string) string {
	return strings.ReplaceAll(str, "-", "_")
}

func normalizeFlagName(name string) string {
	return KebabToSnakeCase(name)
}
