package memory

import "github.com/mohae/deepcopy"

// clone deep-copies v so callers never share memory with the store.
func clone[T any](v T) T {
	return deepcopy.Copy(v).(T)
}

func paginate[T any](items []T, page, size int) []T {
	start := (page - 1) * size
	if start >= len(items) || start < 0 {
		return []T{}
	}
	end := min(start+size, len(items))
	out := make([]T, 0, end-start)
	return append(out, items[start:end]...)
}

func pageOrFirst(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func sizeOr(size, fallback int) int {
	if size < 1 {
		return fallback
	}
	return size
}
