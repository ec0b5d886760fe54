package models

// All returns every model registered for schema migration, parents
// before children so foreign keys resolve.
func All() []any {
	return []any{
		&User{},
		&OAuth{},
		&Category{},
		&Project{},
		&ProjectMedia{},
		&Like{},
		&Comment{},
		&AboutPage{},
		&Notification{},
	}
}
