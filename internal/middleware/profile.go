package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/wfunc/anima-counter/internal/errors"
	"github.com/wfunc/anima-counter/internal/models"
	"github.com/wfunc/anima-counter/internal/service"
)

const contextProfile = "profile"

// ProfileParam 路由中的档案ID参数名
const ProfileParam = "profileId"

// RequireProfile 校验路径中的档案属于当前用户，必须在 RequireAuth 之后使用
func RequireProfile(profiles service.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			AbortWithError(c, apperrors.New(apperrors.ErrAuthentication))
			return
		}

		profileID, err := ParseID(c, ProfileParam)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		profile, err := profiles.Authorize(c.Request.Context(), userID, profileID)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextProfile, profile)
		c.Next()
	}
}

// GetProfile 获取已授权的档案
func GetProfile(c *gin.Context) (*models.Profile, bool) {
	if v, exists := c.Get(contextProfile); exists {
		if p, ok := v.(*models.Profile); ok {
			return p, true
		}
	}
	return nil, false
}

// ParseID 解析正整数路径参数
func ParseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.Validation(apperrors.FieldError{Field: name, Message: "必须是正整数"})
	}
	return uint(id), nil
}
