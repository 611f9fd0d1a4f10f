package auth

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HandleToken handles the token endpoint for the client credentials grant
// @Summary Token Endpoint
// @Description Obtain an access token using client credentials. The token asserts the client owner's email.
// @Tags OAuth2
// @Accept application/x-www-form-urlencoded
// @Produce json
// @Param grant_type formData string true "Grant type: client_credentials"
// @Param client_id formData string true "Client ID"
// @Param client_secret formData string true "Client Secret"
// @Param scope formData string false "Requested scope"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /oauth/token [post]
func (o *OAuthService) HandleToken(c *gin.Context) {
	// The server writes both success and RFC 6749 error bodies itself;
	// a returned error only means the response could not be written
	if err := o.server.HandleTokenRequest(c.Writer, c.Request); err != nil {
		logrus.WithError(err).Warn("Failed to write token response")
	}
}
