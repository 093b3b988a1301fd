package config

// LoaderOption is a functional option for configuring a Loader.
type LoaderOption func(*Loader)

// WithConfigFile reads exactly this file instead of searching. The file must exist.
//
// Parameters:
//   - path: the config file path
//
// Returns:
//   - LoaderOption: option function to apply
func WithConfigFile(path string) LoaderOption {
	return func(l *Loader) {
		l.file = path
	}
}

// WithSearchPaths replaces the directories searched for vidplane.toml.
//
// Parameters:
//   - paths: directories in priority order
//
// Returns:
//   - LoaderOption: option function to apply
func WithSearchPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.paths = paths
	}
}
