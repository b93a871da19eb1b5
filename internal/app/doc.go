// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle that applies every
// compile rule to a project, decoupled from the CLI entrypoint.
package app
