package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Feature flag keys, shared by the config file, PLATFORMKIT_* environment
// variables (upper-cased, dashes to underscores) and command-line flags.
const (
	KeyHMR         = "hmr"
	KeyVerbose     = "verbose"
	KeyReport      = "report"
	KeySourceMap   = "source-map"
	KeyJSX         = "jsx"
	KeyUnitTesting = "unit-testing"
	KeyProduction  = "production"
	KeyLogFormat   = "log-format"
)

// Features are the toggles that shape one build. They are resolved once
// at the edge and passed explicitly into the pipeline.
type Features struct {
	HMR         bool `json:"hmr" yaml:"hmr"`
	Verbose     bool `json:"verbose" yaml:"verbose"`
	Report      bool `json:"report" yaml:"report"`
	SourceMap   bool `json:"source_map" yaml:"source_map"`
	JSX         bool `json:"jsx" yaml:"jsx"`
	UnitTesting bool `json:"unit_testing" yaml:"unit_testing"`
	Production  bool `json:"production" yaml:"production"`
}

// Mode returns "production" or "development".
func (f Features) Mode() string {
	if f.Production {
		return "production"
	}
	return "development"
}

func setDefaults(v *viper.Viper) {
	for _, key := range []string{KeyHMR, KeyVerbose, KeyReport, KeySourceMap, KeyJSX, KeyUnitTesting, KeyProduction} {
		v.SetDefault(key, false)
	}
	v.SetDefault(KeyLogFormat, "text")
}

// BindFlags binds every feature flag present in flags to its viper key so
// an explicitly set flag wins over environment and file values.
func BindFlags(flags *pflag.FlagSet) error {
	return bindFlags(viper.GetViper(), flags)
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyHMR, KeyVerbose, KeyReport, KeySourceMap, KeyJSX, KeyUnitTesting, KeyProduction, KeyLogFormat} {
		f := flags.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}

// LoadFeatures reads the resolved feature flags from the global viper.
func LoadFeatures() Features {
	return featuresFrom(viper.GetViper())
}

func featuresFrom(v *viper.Viper) Features {
	return Features{
		HMR:         v.GetBool(KeyHMR),
		Verbose:     v.GetBool(KeyVerbose),
		Report:      v.GetBool(KeyReport),
		SourceMap:   v.GetBool(KeySourceMap),
		JSX:         v.GetBool(KeyJSX),
		UnitTesting: v.GetBool(KeyUnitTesting),
		Production:  v.GetBool(KeyProduction),
	}
}

// LogFormat returns the configured log format ("text" or "json").
func LogFormat() string {
	return viper.GetString(KeyLogFormat)
}
