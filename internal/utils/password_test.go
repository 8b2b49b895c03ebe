package utils

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

// PasswordTestSuite 密码工具测试套件
type PasswordTestSuite struct {
	suite.Suite
	hasher *PasswordHasher
}

func (suite *PasswordTestSuite) SetupTest() {
	// 测试用低成本参数
	suite.hasher = NewPasswordHasher(&PasswordConfig{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32})
}

// 测试密码哈希
func (suite *PasswordTestSuite) TestHash() {
	hash, err := suite.hasher.Hash("MySecurePassword123!")
	suite.Require().NoError(err)
	suite.True(strings.HasPrefix(hash, "$argon2id$v=19$m=8192,t=1,p=1$"))

	again, err := suite.hasher.Hash("MySecurePassword123!")
	suite.Require().NoError(err)
	suite.NotEqual(hash, again)
}

// 测试密码验证
func (suite *PasswordTestSuite) TestVerify() {
	hash, err := suite.hasher.Hash("CorrectPassword456")
	suite.Require().NoError(err)

	cases := []struct {
		password string
		want     bool
	}{
		{"CorrectPassword456", true},
		{"WrongPassword", false},
		{"correctpassword456", false},
		{"", false},
	}
	for _, tc := range cases {
		ok, err := suite.hasher.Verify(tc.password, hash)
		suite.NoError(err)
		suite.Equal(tc.want, ok, tc.password)
	}
}

// 测试参数从编码串读取
func (suite *PasswordTestSuite) TestVerifyUsesEncodedParams() {
	strong := NewPasswordHasher(&PasswordConfig{Time: 2, Memory: 16 * 1024, Threads: 2, KeyLen: 16})
	hash, err := strong.Hash("contraseña")
	suite.Require().NoError(err)

	ok, err := suite.hasher.Verify("contraseña", hash)
	suite.NoError(err)
	suite.True(ok)
}

// 测试特殊字符密码
func (suite *PasswordTestSuite) TestSpecialCharacterPassword() {
	for _, password := range []string{"P@$$w0rd!", "密码123", "Tab\tSpace New\nLine", strings.Repeat("a", 500)} {
		hash, err := suite.hasher.Hash(password)
		suite.Require().NoError(err)
		ok, err := suite.hasher.Verify(password, hash)
		suite.NoError(err)
		suite.True(ok, "密码 %q 应该验证成功", password)
	}
}

// 测试无效哈希验证
func (suite *PasswordTestSuite) TestVerifyInvalidHash() {
	for _, encoded := range []string{
		"",
		"invalid-hash",
		"$argon2$invalid$format",
		"$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=1,t=1,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=x$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=1,t=1,p=1$!!$aGFzaA",
	} {
		ok, err := suite.hasher.Verify("password", encoded)
		suite.Error(err, encoded)
		suite.False(ok)
	}
}

// 测试包级函数使用默认配置
func (suite *PasswordTestSuite) TestDefaultHelpers() {
	hash, err := HashPassword("DefaultConfig")
	suite.Require().NoError(err)
	suite.Contains(hash, fmt.Sprintf("m=%d,t=%d,p=%d", DefaultPasswordConfig.Memory, DefaultPasswordConfig.Time, DefaultPasswordConfig.Threads))

	ok, err := VerifyPassword("DefaultConfig", hash)
	suite.NoError(err)
	suite.True(ok)
}

// 测试并发哈希
func (suite *PasswordTestSuite) TestConcurrentHashing() {
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			password := fmt.Sprintf("Password%d", id)
			hash, err := suite.hasher.Hash(password)
			if err != nil {
				errs <- err
				return
			}
			if ok, err := suite.hasher.Verify(password, hash); err != nil || !ok {
				errs <- fmt.Errorf("verify %d failed: %v", id, err)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		suite.NoError(err)
	}
}

func TestPasswordSuite(t *testing.T) {
	suite.Run(t, new(PasswordTestSuite))
}
