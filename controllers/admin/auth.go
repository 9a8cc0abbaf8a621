package adminControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthHandler guards the back-office: a single configured operator
// account exchanged for a signed token the admin middleware checks.
type AuthHandler struct {
	username string
	password string
	secret   []byte
}

func NewAuthHandler(username, password, secret string) *AuthHandler {
	return &AuthHandler{username: username, password: password, secret: []byte(secret)}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identifiants requis."})
		return
	}
	if h.password == "" || req.Username != h.username || req.Password != h.password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides."})
		return
	}

	claims := jwt.MapClaims{
		"sub": req.Username,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Échec de la connexion."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": signed})
}
