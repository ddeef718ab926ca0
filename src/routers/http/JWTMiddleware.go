package http

import (
	"net/http"
	"os"
	"time"

	jwt "github.com/appleboy/gin-jwt/v2"
	"github.com/gin-gonic/gin"
	jwtgo "github.com/golang-jwt/jwt/v4"

	"github.com/stewardhq/steward/src/models"
)

func JWTMiddleWare() jwt.GinJWTMiddleware {

	identityKey := "id"
	secret := os.Getenv("STEWARD_JWT_SECRET")
	if secret == "" {
		secret = "TOBECHANGED"
	}

	m := jwt.GinJWTMiddleware{
		Realm:       "steward",
		Key:         []byte(secret),
		Timeout:     time.Hour * 24,
		MaxRefresh:  time.Hour * 24 * 7,
		IdentityKey: identityKey,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if v, ok := data.(*models.User); ok {
				return jwt.MapClaims{
					identityKey: v,
				}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(c *gin.Context) interface{} {
			claims := jwt.ExtractClaims(c)
			user := claims["id"].(map[string]interface{})
			return &models.User{
				Username: user["username"].(string),
				Role:     user["role"].(string),
			}
		},
		Authenticator: func(c *gin.Context) (interface{}, error) {
			var loginVals models.User
			if err := c.ShouldBind(&loginVals); err != nil {
				return "", jwt.ErrMissingLoginValues
			}

			username := os.Getenv("STEWARD_USERNAME")
			password := os.Getenv("STEWARD_PASSWORD")
			if username == "" {
				username = "root"
			}
			if password == "" {
				password = "root"
			}

			if loginVals.Username == username && loginVals.Password == password {
				return &models.User{
					Username: username,
					Role:     "admin",
				}, nil
			}
			return nil, jwt.ErrFailedAuthentication
		},
		LoginResponse: func(c *gin.Context, code int, token string, expire time.Time) {
			hmacSecret := []byte(secret)
			t, _ := jwtgo.Parse(token, func(token *jwtgo.Token) (interface{}, error) {
				return hmacSecret, nil
			})

			claims, _ := t.Claims.(jwtgo.MapClaims)
			user := claims["id"].(map[string]interface{})

			c.JSON(http.StatusOK, gin.H{
				"code":     http.StatusOK,
				"token":    token,
				"expire":   expire.Format(time.RFC3339),
				"username": user["username"].(string),
				"role":     user["role"].(string),
			})
		},
		Authorizator: func(data interface{}, c *gin.Context) bool {
			if _, ok := data.(*models.User); ok {
				return true
			}
			return false
		},
		Unauthorized: func(c *gin.Context, code int, message string) {
			c.AbortWithStatusJSON(code, gin.H{
				"code":    code,
				"message": message,
			})
		},
		TokenLookup: "header: Authorization, query: token, cookie: jwt",
	}

	return m
}
