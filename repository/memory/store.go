package memory

// Store bundles the three in-memory collections behind their repository
// interfaces. Each collection has its own lock; the collections are fully
// independent and a task may reference a category or user that was deleted.
type Store struct {
	Tasks      *TaskRepository
	Categories *CategoryRepository
	Users      *UserRepository
}

// New returns an empty store.
func New() *Store {
	return &Store{
		Tasks:      NewTaskRepository(),
		Categories: NewCategoryRepository(),
		Users:      NewUserRepository(),
	}
}

// Census reports the number of records per collection.
type Census struct {
	Tasks      int `json:"tasks"`
	Categories int `json:"categories"`
	Users      int `json:"users"`
}

func (s *Store) Census() Census {
	return Census{
		Tasks:      s.Tasks.size(),
		Categories: s.Categories.size(),
		Users:      s.Users.size(),
	}
}
