// Package config provides configuration for the Proofessor server.
//
// Options is the resolved configuration shared by the library and the CLI.
// Load fills it from a viper instance, so defaults, an optional YAML file,
// PROOFESSOR_* environment variables and bound command-line flags all apply
// with viper's usual precedence.
package config
