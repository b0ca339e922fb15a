package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func ViolationRoutes(r *gin.Engine, db *sql.DB) {
	r.GET("/api/violations", AuthMiddleware(), RoleMiddleware("admin", "manager"), func(c *gin.Context) {
		GetAllViolations(c, db)
	})
}

// GetAllViolations returns every recorded violation, newest first. The
// client does its own time-window and location filtering in memory.
func GetAllViolations(c *gin.Context, db *sql.DB) {
	rows, err := db.Query(`
		SELECT id, camera_location, detected_gear, missing_gear, timestamp
		FROM safety_violations
		ORDER BY timestamp DESC
	`)
	if err != nil {
		log.Println("Error fetching violations:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching violations"})
		return
	}
	defer rows.Close()

	violations := []SafetyViolation{}
	for rows.Next() {
		var v SafetyViolation
		if err := rows.Scan(&v.ID, &v.CameraLocation, &v.DetectedGear, &v.MissingGear, &v.Timestamp); err != nil {
			log.Println("Error scanning violation:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching violations"})
			return
		}
		violations = append(violations, v)
	}
	if err := rows.Err(); err != nil {
		log.Println("Error reading violations:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching violations"})
		return
	}

	c.JSON(http.StatusOK, violations)
}
