package pagination

// PageDefaultSize is used when a request does not specify a size.
const PageDefaultSize = 20

// PageMaxSize caps the size of a single page.
const PageMaxSize = 100
