package led

// Driver abstracts the strip transport. Write pushes one complete,
// already-encoded transmission buffer to the output.
type Driver interface {
	Write(frame []byte) error
	Close() error
}
