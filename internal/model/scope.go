package model

// Scope carries the identity attached to every memory-service call.
type Scope struct {
	UserID    string
	Username  string
	AgentID   string
	AgentName string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
