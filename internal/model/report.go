package model

// Entry is one render-ready line of a report section.
type Entry struct {
	Due     Date
	Name    string
	Comment string
}

type Section struct {
	Title   string
	Entries []Entry
}

type Report struct {
	Urgent  Section
	Pending Section
}
