// Package session 持有当前登录身份并落盘，跨进程重启保持登录态。
// Store 按依赖注入使用，不做包级单例，方便测试隔离。
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mao2006/lost-found-admin/internal/domain/admin"
)

// StorageKey 持久化的固定命名空间，与历史版本保持一致。
const StorageKey = "lost-found-auth"

// Store 会话存取。唯一的两条写路径是 Login 与 Logout，
// 都是整体替换，不存在部分更新。
type Store struct {
	mu       sync.RWMutex
	path     string
	identity admin.Identity
}

// persistedState 落盘格式：固定 key 包一层，便于人工辨认与将来扩展。
type persistedState map[string]admin.Identity

// DefaultPath 默认会话文件位置。
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "lost-found-admin", StorageKey+".json"), nil
}

// NewStore 打开（或新建）会话文件。文件缺失按未登录处理，
// 文件损坏同样按未登录处理而不是报错，下次登录会覆盖。
func NewStore(path string) (*Store, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}
	var state persistedState
	if err := json.Unmarshal(data, &state); err == nil {
		s.identity = state[StorageKey]
	}
	return s, nil
}

// Identity 读取当前身份快照。
func (s *Store) Identity() admin.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// Token 实现 backend.TokenSource。
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity.Token
}

// Login 整体替换身份并落盘。
func (s *Store) Login(id admin.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = id
	return s.persist()
}

// Logout 清空身份并落盘。过期 token 不会触发这里，
// 只有显式登出才回到未登录态。
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = admin.Empty()
	return s.persist()
}

// persist 先写临时文件再改名，避免写一半留下坏文件。
// 调用方需持有写锁。
func (s *Store) persist() error {
	data, err := json.MarshalIndent(persistedState{StorageKey: s.identity}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

// TokenExpiry 只解码（不验签）token 里的过期时间，仅用于展示。
// 拿不到过期时间返回 ok=false。
func TokenExpiry(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
