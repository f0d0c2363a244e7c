package convert

// stager is the slice of the staging manager the strategies need: output
// allocation and release. Staging of uploads happens at the handler
// boundary, before a strategy runs.
type stager interface {
	AllocateOutput(ext string) string
	AllocateDir() (string, error)
	Release(path string)
}
