package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hugohenrick/food-backoffice/internal/adapter/api/dto"
	"github.com/hugohenrick/food-backoffice/pkg/tenant"
)

const userIDKey = "user_id"

// JWTAuthMiddleware exige um token Bearer válido emitido para a organização do cabeçalho
func JWTAuthMiddleware(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Autenticação requerida"))
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Formato de token inválido, use 'Bearer <token>'"))
			return
		}

		claims, err := jwtService.ValidateToken(tokenParts[1])
		if err != nil {
			message := "Token inválido"
			if errors.Is(err, ErrExpiredToken) {
				message = "Token expirado"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
			return
		}

		// o token só vale para a organização em que foi emitido
		if org := tenant.OrganizationID(c); org != "" && claims.OrganizationID != org {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Token não pertence a esta organização"))
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// CurrentUserID obtém o usuário autenticado do contexto
func CurrentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
