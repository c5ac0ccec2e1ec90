// Package settings owns the configuration surface of the scorer. Every
// tunable constant in the scoring model is declared here with its default,
// loaded through viper so deployments can override individual values via
// config file or environment without recompiling.
package settings
