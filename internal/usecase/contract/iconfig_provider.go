package usecasecontract

import "time"

// IConfigProvider exposes the configuration values usecases depend on.
type IConfigProvider interface {
	GetAppBaseURL() string
	GetSessionTTL() time.Duration
	GetAdminTokenExpiry() time.Duration
	GetAIServiceAPIKey() string
}
