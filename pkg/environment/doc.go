// Package environment names the deployment environments the binaries in this
// module run in and normalizes the aliases accepted in configuration.
//
//	env := environment.Parse(os.Getenv("APP_ENV")) // "prod" -> Production
//	if env.IsProduction() {
//	    // JSON logs, info level
//	}
//
// The logger package uses these values to pick its presets.
package environment
