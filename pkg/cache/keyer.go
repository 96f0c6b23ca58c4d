package cache

// TraceKeyOpts are the trace options that change a traced tile.
type TraceKeyOpts struct {
	AlphaThreshold uint8
	Key            string
	Tolerance      float64
}

// Keyer builds cache keys.
type Keyer interface {
	// TraceKey returns the key of the tile traced from the sprite whose
	// content hash is spriteHash.
	TraceKey(spriteHash string, opts TraceKeyOpts) string
}

// DefaultKeyer produces keys of the form "trace:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// TraceKey implements [Keyer].
func (DefaultKeyer) TraceKey(spriteHash string, opts TraceKeyOpts) string {
	return "trace:" + Hash([]byte(spriteHash+"\n"+opts.canonical()))
}
