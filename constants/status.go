package constants

// Homepage section sizes
const (
	FeaturedPackagesLimit  = 6
	SecondaryPackagesLimit = 4
)

// List paging
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Copy naming
const (
	CopyNameSuffix = " (copy)"
	CopySlugSuffix = "-copy"
)

const (
	DefaultTagColor      = "#007bff"
	DefaultSettingsTitle = "Homepage settings"
	PackageSlugPrefix    = "package-"
)

// AI description
const (
	DefaultPerplexityURL   = "https://api.perplexity.ai/chat/completions"
	DefaultPerplexityModel = "llama-3.1-sonar-small-128k-online"
	AIMaxTokens            = 800
	AIRequestTimeoutSecond = 60
)

// Admin websocket event types
const (
	EventPackageCopied  = "package.copied"
	EventCacheRefreshed = "cache.refreshed"
)
