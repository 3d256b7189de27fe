package session

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists the credential pair in a single JSON file, the
// desktop/CLI analog of browser local storage. Writes go through a
// temporary file and atomic rename so a crash never leaves a torn state.
// The file is created with 0600 permissions since it holds a live token.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type fileState struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// NewFileStore creates a file-backed store at the given path.
// Parent directories are created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return "", err
	}
	if state.Token == "" {
		return "", ErrNotFound
	}
	return state.Token, nil
}

func (s *FileStore) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.update(func(state *fileState) {
		state.Token = token
	})
}

func (s *FileStore) RemoveToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.update(func(state *fileState) {
		state.Token = ""
	})
}

func (s *FileStore) User(ctx context.Context) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load()
	if err != nil {
		return nil, err
	}
	if state.User == nil {
		return nil, ErrNotFound
	}
	return state.User, nil
}

func (s *FileStore) SetUser(ctx context.Context, user *User) error {
	if user == nil {
		return ErrInvalidUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u := *user
	return s.update(func(state *fileState) {
		state.User = &u
	})
}

func (s *FileStore) RemoveUser(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.update(func(state *fileState) {
		state.User = nil
	})
}

// load reads the current state; a missing file is an empty state.
func (s *FileStore) load() (fileState, error) {
	var state fileState

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return state, nil
		}
		return state, errors.Join(ErrStoreFailed, err)
	}

	if len(data) == 0 {
		return state, nil
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return fileState{}, errors.Join(ErrStoreFailed, err)
	}
	return state, nil
}

func (s *FileStore) update(mutate func(*fileState)) error {
	state, err := s.load()
	if err != nil {
		return err
	}

	mutate(&state)

	data, err := json.Marshal(state)
	if err != nil {
		return errors.Join(ErrStoreFailed, err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Join(ErrStoreFailed, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".session-*")
	if err != nil {
		return errors.Join(ErrStoreFailed, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Join(ErrStoreFailed, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Join(ErrStoreFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrStoreFailed, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Join(ErrStoreFailed, err)
	}
	return nil
}
