package accountControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/junaidrashid-git/paintstore-api/jsondb"
	"github.com/junaidrashid-git/paintstore-api/models"
	"go.uber.org/zap"
)

// AddressesCollection holds saved addresses in the backend database.
const AddressesCollection = "addresses"

var errAddressNotFound = errors.New("address not found")

// GET /account/addresses?userId=<id>
func ListAddresses(db *jsondb.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Query("userId")

		addrs, err := jsondb.Read[models.SavedAddress](db, AddressesCollection)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load addresses"})
			return
		}

		out := []models.SavedAddress{}
		for _, a := range addrs {
			if a.UserID == userID {
				out = append(out, a)
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

// POST /account/addresses
func CreateAddress(db *jsondb.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.SavedAddress
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if input.UserID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}
		input.ID = uuid.NewString()

		err := jsondb.Update(db, AddressesCollection, func(addrs []models.SavedAddress) ([]models.SavedAddress, error) {
			return append(addrs, input), nil
		})
		if err != nil {
			logger.Error("create address", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
			return
		}
		c.JSON(http.StatusCreated, input)
	}
}

// PUT /account/addresses/:id
func UpdateAddress(db *jsondb.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var input models.SavedAddress
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		input.ID = id

		err := jsondb.Update(db, AddressesCollection, func(addrs []models.SavedAddress) ([]models.SavedAddress, error) {
			for i := range addrs {
				if addrs[i].ID == id {
					if input.UserID == "" {
						input.UserID = addrs[i].UserID
					}
					addrs[i] = input
					return addrs, nil
				}
			}
			return nil, errAddressNotFound
		})
		if errors.Is(err, errAddressNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		if err != nil {
			logger.Error("update address", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			return
		}
		c.JSON(http.StatusOK, input)
	}
}

// DELETE /account/addresses/:id
func DeleteAddress(db *jsondb.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		err := jsondb.Update(db, AddressesCollection, func(addrs []models.SavedAddress) ([]models.SavedAddress, error) {
			for i := range addrs {
				if addrs[i].ID == id {
					return append(addrs[:i], addrs[i+1:]...), nil
				}
			}
			return nil, errAddressNotFound
		})
		if errors.Is(err, errAddressNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}
		if err != nil {
			logger.Error("delete address", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
