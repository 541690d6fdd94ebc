package cache

// LayoutKeyOpts are the inputs that affect a solved layout besides the
// manifest itself.
type LayoutKeyOpts struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ArtifactKeyOpts are the inputs that affect a rendered artifact besides
// the solved layout.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Keyer builds cache keys for the layout pipeline stages.
type Keyer interface {
	// ManifestKey returns the key for a parsed manifest.
	ManifestKey(manifestHash string) string

	// LayoutKey returns the key for a solved layout.
	LayoutKey(manifestHash string, opts LayoutKeyOpts) string

	// ArtifactKey returns the key for a rendered artifact.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer builds globally-scoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a keyer without scoping.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ManifestKey generates a key for a parsed manifest.
func (k *DefaultKeyer) ManifestKey(manifestHash string) string {
	return "manifest:" + manifestHash
}

// LayoutKey generates a key for a solved layout. The options are hashed
// into the key so different frame sizes cache independently.
func (k *DefaultKeyer) LayoutKey(manifestHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", manifestHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
