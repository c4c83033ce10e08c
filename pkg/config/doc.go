// Package config loads validation engine settings from the environment.
//
// Settings map one-to-one onto the engine's knobs: the undeclared-key mode,
// fail-early behaviour, the session charset and the global depth bound. A
// .env file in the working directory is honoured when present.
//
//	SIEVE_MODE=strict
//	SIEVE_FAIL_EARLY=true
//	SIEVE_CHARSET=iso-8859-1
//	SIEVE_MAX_DEPTH=16
//
//	settings, err := config.Load()
//	opts, err := settings.Options()
//	v := schema.New(registry, opts...)
package config
