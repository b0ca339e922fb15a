package main

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Route setup. Listing is open to admin and manager; anything that
// mutates a worker record is admin only.
func WorkerRoutes(r *gin.Engine, db *sql.DB) {
	r.GET("/api/workers", AuthMiddleware(), RoleMiddleware("admin", "manager"), func(c *gin.Context) {
		GetAllWorkers(c, db)
	})
	r.GET("/api/workers/:id", AuthMiddleware(), RoleMiddleware("admin", "manager"), func(c *gin.Context) {
		GetWorkerByID(c, db)
	})
	r.POST("/api/workers/register", AuthMiddleware(), RoleMiddleware("admin"), func(c *gin.Context) {
		RegisterWorker(c, db)
	})
	r.PUT("/api/workers/:id", AuthMiddleware(), RoleMiddleware("admin"), func(c *gin.Context) {
		UpdateWorker(c, db)
	})
	r.DELETE("/api/workers/:id", AuthMiddleware(), RoleMiddleware("admin"), func(c *gin.Context) {
		DeleteWorker(c, db)
	})
}

// GetIDParam is a helper function to get the ID parameter from the URL and convert it to an integer.
func GetIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "ID must be a number"})
		return 0, false
	}
	return id, true
}

type WorkerInput struct {
	Name         string `json:"name"`
	EmployeeID   string `json:"employee_id"`
	Department   string `json:"department"`
	Contact      string `json:"contact"`
	AssignedArea string `json:"assigned_area"`
}

func (in WorkerInput) incomplete() bool {
	return in.Name == "" || in.EmployeeID == "" || in.Department == "" || in.Contact == "" || in.AssignedArea == ""
}

func GetAllWorkers(c *gin.Context, db *sql.DB) {
	rows, err := db.Query("SELECT id, name, employee_id, department, contact, assigned_area FROM workers")
	if err != nil {
		log.Println("Error fetching workers:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}
	defer rows.Close()

	workers := []Worker{}
	for rows.Next() {
		var w Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.EmployeeID, &w.Department, &w.Contact, &w.AssignedArea); err != nil {
			log.Println("Error scanning worker:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
			return
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		log.Println("Error reading workers:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}

	c.JSON(http.StatusOK, workers)
}

func GetWorkerByID(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}

	var w Worker
	err := db.QueryRow("SELECT id, name, employee_id, department, contact, assigned_area FROM workers WHERE id = ?", id).
		Scan(&w.ID, &w.Name, &w.EmployeeID, &w.Department, &w.Contact, &w.AssignedArea)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Worker not found"})
		return
	}
	if err != nil {
		log.Println("Error fetching worker details:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}

	c.JSON(http.StatusOK, w)
}

func RegisterWorker(c *gin.Context, db *sql.DB) {
	var input WorkerInput
	if err := c.ShouldBindJSON(&input); err != nil || input.incomplete() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	_, err := db.Exec("INSERT INTO workers (name, employee_id, department, contact, assigned_area) VALUES (?, ?, ?, ?, ?)",
		input.Name, input.EmployeeID, input.Department, input.Contact, input.AssignedArea)
	if err != nil {
		log.Println("Error inserting worker:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Worker registered successfully"})
}

func UpdateWorker(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}

	var input WorkerInput
	if err := c.ShouldBindJSON(&input); err != nil || input.incomplete() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		return
	}

	res, err := db.Exec(`
		UPDATE workers
		SET name = ?, employee_id = ?, department = ?, contact = ?, assigned_area = ?
		WHERE id = ?`,
		input.Name, input.EmployeeID, input.Department, input.Contact, input.AssignedArea, id)
	if err != nil {
		log.Println("Error updating worker:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Worker not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Worker updated successfully"})
}

func DeleteWorker(c *gin.Context, db *sql.DB) {
	id, ok := GetIDParam(c)
	if !ok {
		return
	}

	res, err := db.Exec("DELETE FROM workers WHERE id = ?", id)
	if err != nil {
		log.Println("Error deleting worker:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Database error"})
		return
	}

	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Worker not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Worker deleted successfully"})
}
