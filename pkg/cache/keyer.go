package cache

// Keyer derives cache keys. Implementations must be deterministic.
type Keyer interface {
	// ArtifactKey identifies one rendered output of a document.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string

	// TreeKey identifies the composition-tree diagram of a document.
	TreeKey(docHash string, opts TreeKeyOpts) string
}

// ArtifactKeyOpts holds the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Scale       float64 `json:"scale,omitempty"`
	StrokeWidth float64 `json:"stroke_width,omitempty"`
	Title       string  `json:"title,omitempty"`
	Standardize bool    `json:"standardize,omitempty"`
	RSVG        bool    `json:"rsvg,omitempty"`
}

// TreeKeyOpts holds the options that change a tree diagram.
type TreeKeyOpts struct {
	Format string `json:"format"`
	Detail bool   `json:"detail,omitempty"`
}

// DefaultKeyer hashes the document hash together with the options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<hash>".
func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}

// TreeKey returns "tree:<hash>".
func (DefaultKeyer) TreeKey(docHash string, opts TreeKeyOpts) string {
	return hashKey("tree", docHash, opts)
}
