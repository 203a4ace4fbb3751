package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/junaidrashid-git/paintstore-api/jsondb"
	"github.com/junaidrashid-git/paintstore-api/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UsersCollection holds account records in the backend database.
const UsersCollection = "users"

var errEmailTaken = errors.New("email already registered")

type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	MemberSince string `json:"memberSince"`
	Avatar      string `json:"avatar"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken string      `json:"accessToken"`
	User        models.User `json:"user"`
}

// POST /register
func Register(db *jsondb.DB, issuer *Issuer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		email := normalizeEmail(input.Email)
		if email == "" || input.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("hash password", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		memberSince := input.MemberSince
		if memberSince == "" {
			memberSince = time.Now().UTC().Format("2006-01-02")
		}
		user := models.User{
			ID:          uuid.NewString(),
			Email:       email,
			Password:    string(hash),
			Name:        input.Name,
			MemberSince: memberSince,
			Avatar:      input.Avatar,
		}

		err = jsondb.Update(db, UsersCollection, func(users []models.User) ([]models.User, error) {
			for _, u := range users {
				if u.Email == email {
					return nil, errEmailTaken
				}
			}
			return append(users, user), nil
		})
		if errors.Is(err, errEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		if err != nil {
			logger.Error("save user", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		token, err := issuer.IssueAccessToken(user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}
		logger.Info("user registered", zap.String("user_id", user.ID))
		c.JSON(http.StatusCreated, AuthResponse{AccessToken: token, User: user.Public()})
	}
}

// POST /login
func Login(db *jsondb.DB, issuer *Issuer, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		email := normalizeEmail(input.Email)

		users, err := jsondb.Read[models.User](db, UsersCollection)
		if err != nil {
			logger.Error("read users", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
			return
		}

		for _, u := range users {
			if u.Email != email {
				continue
			}
			if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(input.Password)) != nil {
				break
			}
			token, err := issuer.IssueAccessToken(u)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
				return
			}
			c.JSON(http.StatusOK, AuthResponse{AccessToken: token, User: u.Public()})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
