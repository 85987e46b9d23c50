package ports

// ResumeSource reads a resume document into an untyped tree
// (mappings, lists, scalars). Missing files and unparsable or empty
// documents are reported as distinct error kinds.
type ResumeSource interface {
	Read(path string) (any, error)
}
