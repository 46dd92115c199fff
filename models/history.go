package models

// HistoryEntry is one bookmark in the reading history fed to the learning
// profile generator. Tags carries the full tag set, main tag included.
type HistoryEntry struct {
	Title string
	Date  string
	Tags  []string
}
