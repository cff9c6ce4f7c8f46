package api_keys

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ApiKeyHeader = "X-Api-Key"

const apiKeyContextKey = "api_key_id"

// ApiKeyMiddleware rejects requests without an active client key
func ApiKeyMiddleware(apiKeyService *ApiKeyService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader(ApiKeyHeader)
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "API key is required"})
			ctx.Abort()
			return
		}

		response, err := apiKeyService.ValidateApiKey(token)
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate API key"})
			ctx.Abort()
			return
		}

		if !response.IsValid {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			ctx.Abort()
			return
		}

		ctx.Set(apiKeyContextKey, response.ApiKeyID)
		ctx.Next()
	}
}
