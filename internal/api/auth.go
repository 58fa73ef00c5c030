package api

import (
	"net/http"

	"addressbook/internal/dto"
	"addressbook/internal/service"
	"addressbook/internal/utils"

	"github.com/gin-gonic/gin"
)

// LoginHandler exchanges email and password for a JWT
func LoginHandler(svc service.UserService, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		user, err := svc.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "login successful", dto.TokenResponse{Token: token})
	}
}
