package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Upload 已上傳的工作簿
//
// 保留原始位元組而不是開啟後的物件：每次轉換都從位元組重新開啟，
// 各請求操作各自獨立的副本。
type Upload struct {
	Filename   string
	Data       []byte
	Sheets     []string
	UploadedAt time.Time
}

// MemoryStore 記憶體上傳區
//
// 單次轉換以外不落地，逾時自動清掉。
type MemoryStore struct {
	mu      sync.RWMutex
	uploads map[string]*Upload
	ttl     time.Duration
}

// NewMemoryStore 建立上傳區
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		uploads: make(map[string]*Upload),
		ttl:     ttl,
	}
}

// Put 存入上傳檔，回傳檔案識別碼
func (s *MemoryStore) Put(filename string, data []byte, sheets []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	id := uuid.New().String()
	s.uploads[id] = &Upload{
		Filename:   filename,
		Data:       data,
		Sheets:     sheets,
		UploadedAt: time.Now(),
	}
	return id
}

// Get 取出上傳檔
func (s *MemoryStore) Get(id string) (*Upload, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	upload, ok := s.uploads[id]
	if !ok {
		return nil, errors.New("找不到上傳檔案，請重新上傳")
	}
	if time.Since(upload.UploadedAt) > s.ttl {
		return nil, errors.New("上傳檔案已逾時，請重新上傳")
	}
	return upload, nil
}

// Count 目前持有的上傳檔數
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.uploads)
}

func (s *MemoryStore) purgeExpiredLocked(now time.Time) {
	for id, upload := range s.uploads {
		if now.Sub(upload.UploadedAt) > s.ttl {
			delete(s.uploads, id)
		}
	}
}
