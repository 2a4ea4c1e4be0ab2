// Package configsource builds inject keys whose default values come from
// configuration instead of being fixed in code.
//
// A Source wraps a Viper instance loaded from an optional .env file, an
// optional config file, and environment variables. Keys built from a Source
// read the configuration at resolve time, so registry overrides still take
// precedence and a Reset falls back to whatever the configuration says.
//
//	src, err := configsource.Load(
//	    configsource.WithConfigFile("config.yml"),
//	    configsource.WithEnvPrefix("APP"),
//	)
//	timeout := src.Duration("client.timeout", 5*time.Second)
//	d := inject.Resolve[time.Duration](nil, timeout)
package configsource
