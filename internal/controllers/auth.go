package controllers

import (
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spend-tracker/backend/internal/httputil"
	"github.com/spend-tracker/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/signup", httputil.OptionsPost)
		r.POST("/signup", Signup)
	}
	{
		r.OPTIONS("/login", httputil.OptionsPost)
		r.POST("/login", Login)
	}
	{
		r.OPTIONS("/logout", httputil.OptionsPost)
		r.POST("/logout", Logout)
	}
}

type Credentials struct {
	Email    string `json:"email" example:"asha@example.com"`
	Password string `json:"password" example:"hunter2hunter2"`
}

type AuthUser struct {
	ID    uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Email string    `json:"email" example:"asha@example.com"`
}

type AuthResponse struct {
	Token string   `json:"token,omitempty"`
	User  AuthUser `json:"user"`
	Error *string  `json:"error,omitempty"` // The error, if any occurred
}

// sessionLifetime reads the configured session lifetime in hours,
// defaulting to 30 days.
func sessionLifetime() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("SESSION_LIFETIME_HOURS"))
	if err != nil || hours <= 0 {
		return 30 * 24 * time.Hour
	}

	return time.Duration(hours) * time.Hour
}

// issueSession creates a new bearer token for the user.
func issueSession(db *gorm.DB, userID uuid.UUID) (models.Session, error) {
	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(sessionLifetime()),
	}

	err := db.Create(&session).Error
	return session, err
}

// Signup registers a new account and signs it in
//
//	@Summary		Sign up
//	@Description	Creates a new account and returns a bearer token for it
//	@Tags			Auth
//	@Produce		json
//	@Success		201			{object}	AuthResponse
//	@Failure		400			{object}	AuthResponse
//	@Failure		409			{object}	AuthResponse
//	@Param			credentials	body		Credentials	true	"Email and password"
//	@Router			/api/auth/signup [post]
func Signup(c *gin.Context) {
	var credentials Credentials
	if err := httputil.BindData(c, &credentials); err != nil {
		s := err.Error()
		c.JSON(status(err), AuthResponse{Error: &s})
		return
	}

	if len(credentials.Password) < 8 {
		s := errPasswordTooShort.Error()
		c.JSON(http.StatusBadRequest, AuthResponse{Error: &s})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, AuthResponse{Error: &s})
		return
	}

	user := models.User{
		Email:        credentials.Email,
		PasswordHash: string(hash),
	}

	if err := models.DB.Create(&user).Error; err != nil {
		s := err.Error()
		c.JSON(status(err), AuthResponse{Error: &s})
		return
	}

	session, err := issueSession(models.DB, user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AuthResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Token: session.Token,
		User:  AuthUser{ID: user.ID, Email: user.Email},
	})
}

// Login signs an existing account in
//
//	@Summary		Sign in
//	@Description	Checks the credentials and returns a bearer token
//	@Tags			Auth
//	@Produce		json
//	@Success		200			{object}	AuthResponse
//	@Failure		400			{object}	AuthResponse
//	@Failure		401			{object}	AuthResponse
//	@Param			credentials	body		Credentials	true	"Email and password"
//	@Router			/api/auth/login [post]
func Login(c *gin.Context) {
	var credentials Credentials
	if err := httputil.BindData(c, &credentials); err != nil {
		s := err.Error()
		c.JSON(status(err), AuthResponse{Error: &s})
		return
	}

	var user models.User
	err := models.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(credentials.Email))).Error
	if err != nil {
		// Do not leak whether the email exists
		s := errInvalidCredentials.Error()
		c.JSON(http.StatusUnauthorized, AuthResponse{Error: &s})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)) != nil {
		s := errInvalidCredentials.Error()
		c.JSON(http.StatusUnauthorized, AuthResponse{Error: &s})
		return
	}

	session, err := issueSession(models.DB, user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AuthResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Token: session.Token,
		User:  AuthUser{ID: user.ID, Email: user.Email},
	})
}

// Logout revokes the session of the presented token
//
//	@Summary		Sign out
//	@Description	Revokes the bearer token the request was made with
//	@Tags			Auth
//	@Success		204
//	@Router			/api/auth/logout [post]
func Logout(c *gin.Context) {
	token := BearerToken(c)
	if token != "" {
		models.DB.Delete(&models.Session{}, "token = ?", token)
	}

	c.Status(http.StatusNoContent)
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return ""
	}

	return strings.TrimSpace(token)
}

// RequireSession only lets requests with a valid bearer token through.
// The authenticated user is stored in the request context.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: errNoToken.Error()})
			return
		}

		var session models.Session
		if err := models.DB.First(&session, "token = ?", token).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: errInvalidToken.Error()})
			return
		}

		if session.Expired() {
			models.DB.Delete(&session)
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: errInvalidToken.Error()})
			return
		}

		var user models.User
		if err := models.DB.First(&user, "id = ?", session.UserID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpError{Error: errInvalidToken.Error()})
			return
		}

		c.Set(string(models.ContextUser), user)
		c.Next()
	}
}
