package domain

// BookQueries: synchronous reads over the in-memory collection.
type BookQueries interface {
	// FindBook returns the first book whose title equals title exactly.
	FindBook(title string) (Book, bool)
	Books() []Book
	Titles() []string
}

// BookCommands: mutations of the collection. Books are only ever appended.
type BookCommands interface {
	AddBook(b Book)
}

// Store is the handle every action receives.
type Store interface {
	BookQueries
	BookCommands
}

// ActionRegistry holds the menu entries in registration order.
type ActionRegistry interface {
	AddAction(a Action)
	Actions() []Action
}
