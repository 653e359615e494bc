package pagination

// PageDefaultSize is the default page size if not specified
const PageDefaultSize = 10

// PageDefaultFrom is the default offset of the first hit
const PageDefaultFrom = 0
