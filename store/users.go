package store

import (
	log "github.com/sirupsen/logrus"

	"github.com/t-rethnee/restaurant-console/models"
)

// LoadUsers replaces the in-memory user collection with the file contents.
func (s *Store) LoadUsers() error {
	s.users = s.users[:0]
	return readLines(s.usersPath, func(line string) error {
		u, err := decodeUser(line)
		if err != nil {
			return err
		}
		if len(s.users) >= s.maxUsers {
			log.WithField("file", s.usersPath).Warn("User capacity reached, ignoring remaining rows")
			return nil
		}
		s.users = append(s.users, u)
		return nil
	})
}

// UsersFull reports whether the user capacity has been reached.
func (s *Store) UsersFull() bool {
	return len(s.users) >= s.maxUsers
}

// AppendUser persists the record, then admits it to memory. Memory is left
// untouched when the durable append fails, so the two never diverge.
func (s *Store) AppendUser(u models.User) error {
	if len(s.users) >= s.maxUsers {
		return models.ErrCapacityExceeded
	}
	if err := appendLine(s.usersPath, encodeUser(u)); err != nil {
		return err
	}
	s.users = append(s.users, u)
	return nil
}

// RewriteAllUsers replaces the entire backing file with the given
// collection. This is the only way to mutate an existing record; the format
// has no update-by-key.
func (s *Store) RewriteAllUsers(users []models.User) error {
	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, encodeUser(u))
	}
	if err := rewriteFile(s.usersPath, lines); err != nil {
		return err
	}
	s.users = append(s.users[:0], users...)
	return nil
}

// ReplaceUser writes back a mutated copy of an existing user, keyed by
// username. The stored record is replaced wholesale, never edited in place.
func (s *Store) ReplaceUser(updated models.User) error {
	for i, u := range s.users {
		if u.Username == updated.Username {
			next := append([]models.User(nil), s.users...)
			next[i] = updated
			return s.RewriteAllUsers(next)
		}
	}
	return models.ErrNotFound
}

func (s *Store) IsUsernameTaken(username string) bool {
	for _, u := range s.users {
		if u.Username == username {
			return true
		}
	}
	return false
}

func (s *Store) IsEmailTaken(email string) bool {
	for _, u := range s.users {
		if u.Email == email {
			return true
		}
	}
	return false
}

func (s *Store) IsPhoneTaken(phone string) bool {
	for _, u := range s.users {
		if u.Phone == phone {
			return true
		}
	}
	return false
}

// FindUser returns the user with the given username.
func (s *Store) FindUser(username string) (models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, models.ErrNotFound
}

// Users returns a copy of the user collection in insertion order.
func (s *Store) Users() []models.User {
	return append([]models.User(nil), s.users...)
}
