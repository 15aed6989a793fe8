package user

import (
	"tillbox/internal/id"
	"tillbox/internal/store"
)

const idDigits = 7

type Repository interface {
	Create(name, hashedPassword string, role Role) *User
	Add(u *User)
	Find(id int) (*User, error)
	FindByName(name string) (*User, error)
	Remove(id int)
	ChangePassword(id int, hashedPassword string) error
	All() []*User
	Len() int
}

type repository struct {
	list *store.List[*User]
	gen  *id.Generator
}

func NewRepository(gen *id.Generator) Repository {
	return &repository{
		list: store.New[*User](),
		gen:  gen,
	}
}

func (r *repository) Create(name, hashedPassword string, role Role) *User {
	return &User{
		ID:             r.gen.NewUnique(idDigits, r.has),
		Name:           name,
		HashedPassword: hashedPassword,
		Role:           role,
	}
}

func (r *repository) has(id int) bool {
	_, ok := r.list.Find(id)
	return ok
}

func (r *repository) Add(u *User) {
	r.list.Append(u)
}

func (r *repository) Find(id int) (*User, error) {
	u, ok := r.list.Find(id)
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// FindByName scans forward from the head; first exact, case-sensitive
// match wins.
func (r *repository) FindByName(name string) (*User, error) {
	var found *User
	r.list.Each(func(u *User) bool {
		if u.Name == name {
			found = u
			return false
		}
		return true
	})
	if found == nil {
		return nil, ErrUserNotFound
	}
	return found, nil
}

// Remove is a silent no-op when the id is absent.
func (r *repository) Remove(id int) {
	r.list.Remove(id)
}

func (r *repository) ChangePassword(id int, hashedPassword string) error {
	u, ok := r.list.Find(id)
	if !ok {
		return ErrUserNotFound
	}
	u.HashedPassword = hashedPassword
	return nil
}

func (r *repository) All() []*User {
	return r.list.All()
}

func (r *repository) Len() int {
	return r.list.Len()
}
