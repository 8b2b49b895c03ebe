package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var ErrInvalidHash = errors.New("invalid encoded hash format")

// PasswordConfig Argon2配置
type PasswordConfig struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

// DefaultPasswordConfig 默认配置
var DefaultPasswordConfig = &PasswordConfig{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

// PasswordHasher argon2id 密码哈希器
type PasswordHasher struct {
	cfg PasswordConfig
}

// NewPasswordHasher 创建哈希器，nil 使用默认配置
func NewPasswordHasher(cfg *PasswordConfig) *PasswordHasher {
	if cfg == nil {
		cfg = DefaultPasswordConfig
	}
	c := *cfg
	if c.SaltLen == 0 {
		c.SaltLen = 16
	}
	return &PasswordHasher{cfg: c}
}

// Hash 生成编码后的哈希: $argon2id$v=19$m=65536,t=1,p=4$salt$hash
func (h *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, h.cfg.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, h.cfg.Time, h.cfg.Memory, h.cfg.Threads, h.cfg.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, h.cfg.Memory, h.cfg.Time, h.cfg.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// Verify 校验密码，参数取自编码串本身
func (h *PasswordHasher) Verify(password, encoded string) (bool, error) {
	cfg, salt, key, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}
	other := argon2.IDKey([]byte(password), salt, cfg.Time, cfg.Memory, cfg.Threads, cfg.KeyLen)
	return subtle.ConstantTimeCompare(key, other) == 1, nil
}

func decodeHash(encoded string) (*PasswordConfig, []byte, []byte, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, ErrInvalidHash
	}
	if version != argon2.Version {
		return nil, nil, nil, fmt.Errorf("incompatible argon2 version %d", version)
	}

	cfg := &PasswordConfig{}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &cfg.Memory, &cfg.Time, &cfg.Threads); err != nil {
		return nil, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, ErrInvalidHash
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(key) == 0 {
		return nil, nil, nil, ErrInvalidHash
	}
	cfg.KeyLen = uint32(len(key))
	cfg.SaltLen = uint32(len(salt))
	return cfg, salt, key, nil
}

// HashPassword 使用默认配置哈希密码
func HashPassword(password string) (string, error) {
	return NewPasswordHasher(nil).Hash(password)
}

// VerifyPassword 验证密码
func VerifyPassword(password, encoded string) (bool, error) {
	return NewPasswordHasher(nil).Verify(password, encoded)
}
