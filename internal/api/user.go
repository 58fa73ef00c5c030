package api

import (
	"net/http"
	"strconv"
	"time"

	"addressbook/internal/dto"
	"addressbook/internal/service"
	"addressbook/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Cache keys for the list endpoints. Any write invalidates both lists since
// user payloads embed addresses.
const (
	cacheKeyAllUsers     = "addressbook:users:all"
	cacheKeyAllAddresses = "addressbook:addresses:all"
)

// parseID reads the numeric :id path parameter
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		writeError(c, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// invalidateLists drops the cached list responses after a write
func invalidateLists(c *gin.Context, rdb *redis.Client) {
	_ = utils.DeleteCache(c.Request.Context(), rdb, cacheKeyAllUsers, cacheKeyAllAddresses)
}

// GetUsersHandler returns all users, read-through cached
func GetUsersHandler(svc service.UserService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cached []dto.UserResponse
		found, err := utils.GetCache(c.Request.Context(), rdb, cacheKeyAllUsers, &cached)
		if err == nil && found {
			respond(c, http.StatusOK, "fetched all users", cached)
			return
		}
		users, err := svc.GetAllUsers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.SetCache(c.Request.Context(), rdb, cacheKeyAllUsers, users, ttl)
		respond(c, http.StatusOK, "fetched all users", users)
	}
}

// GetUserHandler returns one user by id
func GetUserHandler(svc service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		user, err := svc.GetUserByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "fetched user", user)
	}
}

// CreateUserHandler validates and creates a user with its addresses
func CreateUserHandler(svc service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.UserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		created, err := svc.CreateUser(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		logrus.WithField("user_id", created.ID).Info("create user request handled")
		invalidateLists(c, rdb)
		respond(c, http.StatusCreated, "created user "+created.FirstName, created)
	}
}

// UpdateUserHandler replaces every field of an existing user, including the
// full address collection
func UpdateUserHandler(svc service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var req dto.UserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		updated, err := svc.UpdateUser(c.Request.Context(), id, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		invalidateLists(c, rdb)
		respond(c, http.StatusOK, "updated user", updated)
	}
}

// DeleteUserHandler deletes a user and its addresses, replying 204
func DeleteUserHandler(svc service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := svc.DeleteUser(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		invalidateLists(c, rdb)
		c.Status(http.StatusNoContent)
	}
}

// SearchUsersByAddressHandler finds the distinct users owning an address that
// matches the city and/or state query parameters. With neither parameter it
// falls back to all users.
func SearchUsersByAddressHandler(svc service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		city := c.Query("city")
		state := c.Query("state")

		var (
			users []dto.UserResponse
			err   error
		)
		switch {
		case city != "" && state != "":
			users, err = svc.FindUsersByAddressCityAndState(c.Request.Context(), city, state)
		case city != "":
			users, err = svc.FindUsersByAddressCity(c.Request.Context(), city)
		case state != "":
			users, err = svc.FindUsersByAddressState(c.Request.Context(), state)
		default:
			users, err = svc.GetAllUsers(c.Request.Context())
		}
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "search users by address", users)
	}
}
