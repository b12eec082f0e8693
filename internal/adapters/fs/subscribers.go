package fs

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"sync"

	"github.com/3-lines-studio/folio/internal/core"
)

// SubscriberFile keeps newsletter subscribers as JSON lines in one file.
type SubscriberFile struct {
	fs   FileSystem
	path string

	mu     sync.Mutex
	loaded bool
	emails map[string]bool
	data   []byte
}

func NewSubscriberFile(fs FileSystem, path string) *SubscriberFile {
	return &SubscriberFile{fs: fs, path: path}
}

func (s *SubscriberFile) Add(ctx context.Context, sub core.Subscriber) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return err
	}
	if s.emails[sub.Email] {
		return core.ErrAlreadySubscribed
	}

	line, err := json.Marshal(sub)
	if err != nil {
		return err
	}

	data := append(append(bytes.Clone(s.data), line...), '\n')
	if err := s.fs.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write subscribers: %w", err)
	}

	s.data = data
	s.emails[sub.Email] = true
	return nil
}

func (s *SubscriberFile) List() ([]core.Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(); err != nil {
		return nil, err
	}
	return decodeSubscribers(s.data)
}

func (s *SubscriberFile) load() error {
	if s.loaded {
		return nil
	}

	data, err := s.fs.ReadFile(s.path)
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return fmt.Errorf("read subscribers: %w", err)
	}

	subs, err := decodeSubscribers(data)
	if err != nil {
		return err
	}

	s.emails = make(map[string]bool, len(subs))
	for _, sub := range subs {
		s.emails[sub.Email] = true
	}
	s.data = data
	s.loaded = true
	return nil
}

func decodeSubscribers(data []byte) ([]core.Subscriber, error) {
	var subs []core.Subscriber
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for n := 1; scanner.Scan(); n++ {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var sub core.Subscriber
		if err := json.Unmarshal(line, &sub); err != nil {
			return nil, fmt.Errorf("subscribers line %d: %w", n, err)
		}
		subs = append(subs, sub)
	}
	return subs, scanner.Err()
}
