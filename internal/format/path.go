package format

// PathSeparator separates remote path segments.
const PathSeparator = '/'

// StripTrailingSeparator removes a single trailing '/' unless path is the root.
func StripTrailingSeparator(path string) string {
	return StripTrailingSeparatorFunc(PathSeparator)(path)
}

// StripTrailingSeparatorFunc returns a StripTrailingSeparator for sep.
func StripTrailingSeparatorFunc(sep byte) func(string) string {
	return func(path string) string {
		if len(path) > 1 && path[len(path)-1] == sep {
			return path[:len(path)-1]
		}
		return path
	}
}
