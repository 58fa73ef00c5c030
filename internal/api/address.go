package api

import (
	"net/http"
	"time"

	"addressbook/internal/domain"
	"addressbook/internal/dto"
	"addressbook/internal/service"
	"addressbook/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// AddressPayload is the standalone-address request body. Unlike the nested
// variant inside a user payload it must name its owner.
type AddressPayload struct {
	dto.AddressRequest
	UserID uint `json:"userId" binding:"required"`
}

// toEntity maps the payload including the owner back-reference
func (p *AddressPayload) toEntity() *domain.Address {
	entity := dto.ToAddressEntity(&p.AddressRequest)
	entity.UserID = p.UserID
	return entity
}

// GetAddressesHandler returns all addresses, read-through cached
func GetAddressesHandler(svc service.AddressService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cached []dto.AddressResponse
		found, err := utils.GetCache(c.Request.Context(), rdb, cacheKeyAllAddresses, &cached)
		if err == nil && found {
			respond(c, http.StatusOK, "fetched all addresses", cached)
			return
		}
		addresses, err := svc.GetAllAddresses(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		mapped := dto.FromAddressEntities(addresses)
		_ = utils.SetCache(c.Request.Context(), rdb, cacheKeyAllAddresses, mapped, ttl)
		respond(c, http.StatusOK, "fetched all addresses", mapped)
	}
}

// GetAddressHandler returns one address by id
func GetAddressHandler(svc service.AddressService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		address, err := svc.GetAddressByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, "fetched address", dto.FromAddressEntity(address))
	}
}

// CreateAddressHandler validates and creates an address for an existing user
func CreateAddressHandler(svc service.AddressService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload AddressPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondBindError(c, err)
			return
		}
		created, err := svc.CreateAddress(c.Request.Context(), payload.toEntity())
		if err != nil {
			respondError(c, err)
			return
		}
		invalidateLists(c, rdb)
		respond(c, http.StatusCreated, "address created", dto.FromAddressEntity(created))
	}
}

// UpdateAddressHandler overwrites every field of an existing address
func UpdateAddressHandler(svc service.AddressService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		var payload AddressPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondBindError(c, err)
			return
		}
		updated, err := svc.UpdateAddress(c.Request.Context(), id, payload.toEntity())
		if err != nil {
			respondError(c, err)
			return
		}
		invalidateLists(c, rdb)
		respond(c, http.StatusOK, "address updated", dto.FromAddressEntity(updated))
	}
}

// DeleteAddressHandler removes one address, replying 204
func DeleteAddressHandler(svc service.AddressService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		if err := svc.DeleteAddress(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		invalidateLists(c, rdb)
		c.Status(http.StatusNoContent)
	}
}
