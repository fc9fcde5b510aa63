package model

// Environment represents the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope identifies the user a request acts on behalf of.
type Scope struct {
	UserID      string // WhatsApp wa_id (phone number)
	DisplayName string // profile name from the inbound contact
}
