// Package environment defines the application environment names and a
// context carrier for them, so logging and configuration can adapt their
// behavior per deployment target.
package environment

// Environment represents the application environment.
type Environment string

const (
	// Development for local development.
	Development Environment = "development"
	// Staging for pre-production deployments.
	Staging Environment = "staging"
	// Production for production deployments.
	Production Environment = "production"
)
