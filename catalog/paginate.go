package catalog

// clampPage normalizes a 1-based page number so the skip offset can never
// go negative.
func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// TotalPages returns ceil(total/pageSize), and 0 for an empty set.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
