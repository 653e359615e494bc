package domain

// Collection names a logical partition of the sitewide index with its own
// query tuning.
type Collection string

const (
	// CollectionCGov is the general cancer.gov content.
	CollectionCGov Collection = "cgov"
	// CollectionDOC holds the Division/Office/Center sites, restricted by site prefix.
	CollectionDOC Collection = "doc"
)

// SupportedCollections is the closed set of collections a query may target.
var SupportedCollections = map[Collection]bool{
	CollectionCGov: true,
	CollectionDOC:  true,
}

// DefaultSite is the site filter used when a request does not name one.
const DefaultSite = "all"
