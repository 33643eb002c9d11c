package pagination

// TotalPages returns how many pages of size items count fills. An empty
// listing still has one page.
func TotalPages(count, size int) int {
	if size < 1 || count <= 0 {
		return 1
	}
	return (count + size - 1) / size
}

// Paginate splits items into consecutive pages of at most size items.
// The pages share items' backing array. An empty input yields a single
// empty page; a size below 1 puts everything on one page.
func Paginate[T any](items []T, size int) [][]T {
	if size < 1 || len(items) == 0 {
		return [][]T{items[:len(items):len(items)]}
	}
	pages := make([][]T, 0, TotalPages(len(items), size))
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		pages = append(pages, items[start:end:end])
	}
	return pages
}
