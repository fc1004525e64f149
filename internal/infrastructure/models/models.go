package models

// All returns every model registered for schema migration, leaf tables first.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Player{},
		&Game{},
		&Team{},
		&Tournament{},
		&Registration{},
		&Match{},
		&News{},
		&Achievement{},
		&Product{},
	}
}
