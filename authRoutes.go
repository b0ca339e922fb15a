package main

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Route setup
func AuthRoutes(r *gin.Engine, db *sql.DB) {
	r.POST("/login", func(c *gin.Context) {
		handleLogin(c, db)
	})
	r.POST("/register", func(c *gin.Context) {
		handleRegister(c, db)
	})
	r.POST("/validate-token", handleValidateToken)
}

// =================== LOGIN ===================

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func handleLogin(c *gin.Context, db *sql.DB) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	user, err := findUserByEmail(db, strings.ToLower(input.Email))
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err != nil {
		log.Println("Database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid password"})
		return
	}

	token, err := GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":   token,
		"role":    user.Role,
		"message": "Login successful",
	})
}

// =================== REGISTER ===================

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func handleRegister(c *gin.Context, db *sql.DB) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Email == "" || input.Password == "" || input.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	role := strings.ToLower(input.Role)
	validRoles := map[string]bool{"admin": true, "manager": true, "worker": true}
	if !validRoles[role] {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Role must be one of 'admin', 'manager', or 'worker'"})
		return
	}

	email := strings.ToLower(input.Email)

	// Duplicate email check before insert (a UNIQUE index backs this up).
	_, err := findUserByEmail(db, email)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
		return
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Println("Error checking user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}

	hashedPwd, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}

	_, err = db.Exec("INSERT INTO users (email, password, role) VALUES (?, ?, ?)",
		email, string(hashedPwd), role)
	if err != nil {
		log.Println("Error inserting user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error during registration"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

// =================== VALIDATE TOKEN ===================

func handleValidateToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.JSON(http.StatusForbidden, gin.H{"message": "No token provided"})
		return
	}

	claims, err := ParseToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Token is valid", "role": claims.Role})
}

// =================== DATABASE HELPER ===================

func findUserByEmail(db *sql.DB, email string) (User, error) {
	var u User
	err := db.QueryRow("SELECT id, email, password, role FROM users WHERE email = ?", email).
		Scan(&u.ID, &u.Email, &u.Password, &u.Role)
	return u, err
}
