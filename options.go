package datastore

// Option defines a function type for applying configuration options to a Store.
type Option func(*Store)

// WithExtensions sets the extension list tried during candidate search.
// Order is significant: for each path prefix, extensions are probed in the
// order given here. The default is keypath.DefaultExtensions.
func WithExtensions(extensions ...string) Option {
	return func(store *Store) {
		store.extensions = extensions
	}
}

// WithFetcher replaces the default filesystem fetcher. Useful for tests or
// for backing a store with something other than a plain directory tree.
func WithFetcher(fetcher Fetcher) Option {
	return func(store *Store) {
		store.fetcher = fetcher
	}
}

// WithParser replaces the default YAML parser.
func WithParser(parser Parser) Option {
	return func(store *Store) {
		store.parser = parser
	}
}
