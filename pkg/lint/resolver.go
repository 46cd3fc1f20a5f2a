package lint

// ToolchainResolver reports the rust-toolchain channel governing a
// manifest directory.
//
// The lint package defines this interface to follow the gobible principle
// of defining interfaces in the consumer package. The engine calls it only
// when linting a manifest, so implementations may read the filesystem;
// pkg/cargo provides the standard one.
//
// Implementations must be:
//   - deterministic for a given directory state,
//   - safe for concurrent use by multiple goroutines.
type ToolchainResolver interface {
	// Channel returns the channel declared by a rust-toolchain.toml or
	// legacy rust-toolchain file in dir, and whether one was found.
	Channel(dir string) (string, bool)
}
