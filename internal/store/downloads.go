package store

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

type download struct {
	filePath  string
	filename  string
	expiresAt time.Time
}

// DownloadStore 輸出檔下載憑證
type DownloadStore struct {
	mu    sync.Mutex
	items map[string]download
}

// NewDownloadStore 建立下載憑證區
func NewDownloadStore() *DownloadStore {
	return &DownloadStore{
		items: make(map[string]download),
	}
}

// Put 登記輸出檔，回傳下載憑證
func (s *DownloadStore) Put(filePath, filename string, ttl time.Duration) (token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	token = newRandomToken(24)
	s.items[token] = download{
		filePath:  filePath,
		filename:  filename,
		expiresAt: time.Now().Add(ttl),
	}
	return token
}

// Get 取出輸出檔路徑與下載檔名
func (s *DownloadStore) Get(token string) (filePath, filename string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	v, found := s.items[token]
	if !found {
		return "", "", false
	}
	if time.Now().After(v.expiresAt) {
		delete(s.items, token)
		return "", "", false
	}
	return v.filePath, v.filename, true
}

// Delete 作廢憑證
func (s *DownloadStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, token)
}

func (s *DownloadStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}

func newRandomToken(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
