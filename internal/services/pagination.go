package services

const QuestionsPerPage = 10

// Paginate returns the 1-based page of items. Pages outside the available
// range come back empty, never nil.
func Paginate[T any](items []T, page int) []T {
	if page < 1 || page-1 >= (len(items)+QuestionsPerPage-1)/QuestionsPerPage {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}
