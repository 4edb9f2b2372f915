package mem

const (
	// PageShift is equal to log2(PageSize). This constant is used when
	// converting a physical address to a page number and vice-versa.
	PageShift = 12

	// PageSize defines the system's page size in bytes.
	PageSize = Size(1 << PageShift)
)
