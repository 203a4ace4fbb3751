package resourceControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/paintstore-api/auth"
	"github.com/junaidrashid-git/paintstore-api/jsondb"
	"github.com/junaidrashid-git/paintstore-api/models"
)

// GET /:resource
func GetResource(db *jsondb.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("resource")

		// Never hand out password hashes.
		if name == auth.UsersCollection {
			users, err := jsondb.Read[models.User](db, name)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
				return
			}
			for i := range users {
				users[i] = users[i].Public()
			}
			c.JSON(http.StatusOK, users)
			return
		}

		raw, err := db.Raw(name)
		if errors.Is(err, jsondb.ErrNoCollection) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load resource"})
			return
		}
		c.Data(http.StatusOK, "application/json; charset=utf-8", raw)
	}
}
