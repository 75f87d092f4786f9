package domain

// SortKey is the ordered list of segments derived from one path. Two keys
// are compared segment by segment.
type SortKey []string

// Options controls how paths are turned into keys and how keys are compared.
type Options struct {
	// FolderFirst places directory components ahead of sibling files.
	FolderFirst bool
	// Locale is a BCP 47 tag such as "zh-CN". Empty selects the root collation.
	Locale string
}
