package session

import "strconv"

// Storage keys, visible to the browser. Both values are whatever the backend
// asserted on the last successful login; nothing here is signed or verified.
const (
	KeyUserId   = "user_id"
	KeyUserName = "user_name"

	DefaultUserName = "guest"
)

// Storage abstracts the origin-scoped key-value store backing the session so
// tests can substitute an in-memory fake.
type Storage interface {
	Get(key string) string
	Set(key, value string)
	Delete(key string)
}

type Session struct {
	UserId   int
	UserName string
}

// SignedIn reports whether the store holds a usable identity. A zero UserId
// means "not authenticated" for client-side gating only; the backend is the
// trust boundary.
func (s Session) SignedIn() bool {
	return s.UserId != 0
}

type Store struct {
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

func (s *Store) Get() Session {
	userId, err := strconv.Atoi(s.storage.Get(KeyUserId))
	if err != nil {
		userId = 0
	}
	userName := s.storage.Get(KeyUserName)
	if userName == "" {
		userName = DefaultUserName
	}
	return Session{UserId: userId, UserName: userName}
}

func (s *Store) Set(userId int, userName string) {
	s.storage.Set(KeyUserId, strconv.Itoa(userId))
	s.storage.Set(KeyUserName, userName)
}

func (s *Store) Clear() {
	s.storage.Delete(KeyUserId)
	s.storage.Delete(KeyUserName)
}
