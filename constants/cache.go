package constants

// Redis keys
const (
	CacheKeyHomepage         = "homepage:view"
	CacheKeyActiveContinents = "geo:continents:active"
	CacheKeyPrefixPackages   = "packages:"
	CacheKeyPackageList      = "packages:all"
	// per geography chain lists, kept apart from CacheKeyPackageList
	CacheKeyPrefixPackageGeo = "packages:geo:"
)
