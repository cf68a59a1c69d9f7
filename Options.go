package rroute

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/rohanthewiz/rroute/core/tpl"
)

// RouterOptions configures a Router's registration policy.
type RouterOptions struct {
	// Immutable rejects registering a name that already exists.
	Immutable bool `mapstructure:"immutable"`

	// Duplicates allows multiple names for the same method+url signature.
	Duplicates bool `mapstructure:"duplicates"`
}

// RouterOptionsFromMap decodes a plain option record, as handed over by a
// configuration layer, into RouterOptions. Unknown keys are ignored.
func RouterOptionsFromMap(values map[string]any) (opts RouterOptions, err error) {
	err = decodeOptions(values, &opts)
	return opts, err
}

// bindOptions mirrors the binder-relevant option keys of a plain option
// record. The conversion function is code, not configuration, so it is set
// on tpl.Config directly by the caller.
type bindOptions struct {
	BindGetParameters bool `mapstructure:"bindGetParameters"`
}

// BindConfigFromMap decodes a plain option record into a tpl.Config.
func BindConfigFromMap(values map[string]any) (tpl.Config, error) {
	var opts bindOptions
	if err := decodeOptions(values, &opts); err != nil {
		return tpl.Config{}, err
	}
	return tpl.Config{BindGetParameters: opts.BindGetParameters}, nil
}

// RouteConfigFromMap decodes a plain option record into a RouteConfig for
// use with WithRouteConfig.
func RouteConfigFromMap(values map[string]any) (cfg RouteConfig, err error) {
	err = decodeOptions(values, &cfg)
	return cfg, err
}

func decodeOptions(values map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(values)
}
