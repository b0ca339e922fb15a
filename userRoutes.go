package main

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func UserRoutes(r *gin.Engine, db *sql.DB) {
	r.GET("/api/user/profile", AuthMiddleware(), func(c *gin.Context) {
		GetUserProfile(c, db)
	})
}

// GetUserProfile returns the caller's own account, keyed by the user id
// embedded in the token. Any authenticated role may call it.
func GetUserProfile(c *gin.Context, db *sql.DB) {
	userID := GetUserID(c)

	var u User
	err := db.QueryRow("SELECT id, email, role FROM users WHERE id = ?", userID).
		Scan(&u.ID, &u.Email, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	if err != nil {
		log.Println("Error fetching user profile:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    u.ID,
		"email": u.Email,
		"role":  u.Role,
	})
}
