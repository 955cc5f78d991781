package model

// All returns every model in foreign-key order, for migrations
func All() []interface{} {
	return []interface{}{
		&User{},
		&Location{},
		&Vehicle{},
		&Supplier{},
		&Part{},
		&Purchance{},
		&Warranty{},
	}
}
