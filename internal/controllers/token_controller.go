package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/linkup-api/internal/models"
)

// TokenIssuer signs arbitrary claims into a bearer token
type TokenIssuer interface {
	Issue(claims map[string]any) (string, error)
}

type TokenController struct {
	tokens TokenIssuer
}

func NewTokenController(tokens TokenIssuer) *TokenController {
	return &TokenController{tokens: tokens}
}

// IssueToken godoc
// @Summary Issue a token
// @Description Signs the posted claims (expected to contain email) into a bearer token with a fixed lifetime. Claims are not checked against stored users.
// @Tags auth
// @Accept json
// @Produce json
// @Param claims body object true "Claims to sign, e.g. {\"email\":\"a@x.com\"}"
// @Success 200 {object} map[string]string
// @Failure 400 {object} models.MessageResponse
// @Router /jwt [post]
func (tc *TokenController) IssueToken(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewMessage("Invalid request body"))
		return
	}

	claims := map[string]any{}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, &claims); err != nil {
			c.JSON(http.StatusBadRequest, models.NewMessage("Request body must be a JSON object"))
			return
		}
	}

	token, err := tc.tokens.Issue(claims)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.NewMessage("Could not generate token"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
