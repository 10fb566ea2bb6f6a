// Package config loads declarative binding manifests.
//
// A manifest is a YAML document naming the credential store and the
// bindings to establish before a command runs:
//
//	store: credentials.yaml
//	bindings:
//	  - kind: ssh-key
//	    credential: deploy-key
//	    key_file_variable: DEPLOY_KEY
//	  - kind: text
//	    credential: api-token
//	    variable: API_TOKEN
//
// # Basic Usage
//
// Load a manifest and build its bindings:
//
//	cfg, err := config.Load("credbind.yaml")
//	if err != nil { ... }
//
//	store, err := cfg.OpenStore()
//	bindings, err := cfg.Build()
//
// Build validates every declaration, including variable collisions across
// bindings, so a broken manifest is rejected before any credential is
// fetched or any file written.
package config
