// Package memory is a process-local storage driver for development and tests.
// All repositories built from one Store share its data and lock.
package memory

import (
	"context"
	"sync"
	"time"

	"wellness/internal/domain/entity"
	"wellness/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store holds every collection in maps guarded by a single RWMutex.
type Store struct {
	mu        sync.RWMutex
	users     map[string]*entity.User
	emails    map[string]string // normalized email -> user id
	moods     map[string]*entity.MoodEntry
	blacklist map[string]*entity.BlacklistedToken
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:     make(map[string]*entity.User),
		emails:    make(map[string]string),
		moods:     make(map[string]*entity.MoodEntry),
		blacklist: make(map[string]*entity.BlacklistedToken),
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t

	return &v
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.UpdatedAt = cloneTime(u.UpdatedAt)

	return &c
}

func cloneMood(e *entity.MoodEntry) *entity.MoodEntry {
	c := *e
	c.UpdatedAt = cloneTime(e.UpdatedAt)

	return &c
}

type userRepository struct {
	store *Store
}

// NewUserRepository returns a UserRepository backed by the store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (repo *userRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	user, ok := repo.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	id, ok := repo.store.emails[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(repo.store.users[id]), nil
}

// Create reserves the email and stores the user under one lock.
func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	email := entity.NormalizeEmail(user.Email)
	if _, taken := repo.store.emails[email]; taken {
		return errors.WithStack(repository.ErrEmailTaken)
	}

	user.ID = uuid.NewString()
	user.Email = email
	repo.store.emails[email] = user.ID
	repo.store.users[user.ID] = cloneUser(user)

	return nil
}

func (repo *userRepository) Update(_ context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	existing, ok := repo.store.users[user.ID]
	if !ok {
		return repository.ErrUserNotFound
	}

	existing.Name = user.Name
	existing.PasswordHash = user.PasswordHash
	existing.LoginProvider = user.LoginProvider
	existing.FederatedID = user.FederatedID
	existing.UpdatedAt = cloneTime(user.UpdatedAt)

	return nil
}

func (repo *userRepository) DeleteAll(_ context.Context) (int, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	deleted := len(repo.store.users)
	clear(repo.store.users)
	clear(repo.store.emails)

	return deleted, nil
}

type moodRepository struct {
	store *Store
}

// NewMoodRepository returns a MoodRepository backed by the store.
func NewMoodRepository(store *Store) repository.MoodRepository {
	return &moodRepository{store: store}
}

func (repo *moodRepository) Create(_ context.Context, entry *entity.MoodEntry) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	entry.ID = uuid.NewString()
	repo.store.moods[entry.ID] = cloneMood(entry)

	return nil
}

func (repo *moodRepository) FindByID(_ context.Context, id string) (*entity.MoodEntry, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	entry, ok := repo.store.moods[id]
	if !ok {
		return nil, repository.ErrMoodEntryNotFound
	}

	return cloneMood(entry), nil
}

func (repo *moodRepository) ListByUser(_ context.Context, userID string) ([]*entity.MoodEntry, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	entries := make([]*entity.MoodEntry, 0)
	for _, entry := range repo.store.moods {
		if entry.UserID == userID {
			entries = append(entries, cloneMood(entry))
		}
	}

	return entries, nil
}

func (repo *moodRepository) Update(_ context.Context, entry *entity.MoodEntry) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	existing, ok := repo.store.moods[entry.ID]
	if !ok {
		return repository.ErrMoodEntryNotFound
	}

	existing.MoodType = entry.MoodType
	existing.Level = entry.Level
	existing.ShortDescription = entry.ShortDescription
	existing.UpdatedAt = cloneTime(entry.UpdatedAt)

	return nil
}

func (repo *moodRepository) Delete(_ context.Context, id string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.moods[id]; !ok {
		return repository.ErrMoodEntryNotFound
	}
	delete(repo.store.moods, id)

	return nil
}

func (repo *moodRepository) DeleteAll(_ context.Context) (int, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	deleted := len(repo.store.moods)
	clear(repo.store.moods)

	return deleted, nil
}

type tokenBlacklistRepository struct {
	store *Store
}

// NewTokenBlacklistRepository returns a TokenBlacklistRepository backed by the store.
func NewTokenBlacklistRepository(store *Store) repository.TokenBlacklistRepository {
	return &tokenBlacklistRepository{store: store}
}

func (repo *tokenBlacklistRepository) Add(_ context.Context, token *entity.BlacklistedToken) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	row := *token
	repo.store.blacklist[token.Token] = &row

	return nil
}

func (repo *tokenBlacklistRepository) Exists(_ context.Context, token string) (bool, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	_, ok := repo.store.blacklist[token]

	return ok, nil
}

func (repo *tokenBlacklistRepository) Find(_ context.Context, token string) (*entity.BlacklistedToken, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	row, ok := repo.store.blacklist[token]
	if !ok {
		return nil, repository.ErrBlacklistEntryNotFound
	}
	c := *row

	return &c, nil
}

func (repo *tokenBlacklistRepository) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	deleted := 0
	for key, row := range repo.store.blacklist {
		if row.Expired(now) {
			delete(repo.store.blacklist, key)
			deleted++
		}
	}

	return deleted, nil
}

func (repo *tokenBlacklistRepository) DeleteAll(_ context.Context) (int, error) {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	deleted := len(repo.store.blacklist)
	clear(repo.store.blacklist)

	return deleted, nil
}
