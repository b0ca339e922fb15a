package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds every externally supplied setting. Nothing is hard-coded:
// database credentials, the token signing secret, and the CORS origin all
// come from the environment (or a .env file during development).
type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPass        string
	DBName        string
	JWTSecret     string
	AllowedOrigin string
	Port          string
}

func LoadConfig() (Config, error) {
	err := godotenv.Load() // Load .env file if present
	if err != nil {
		log.Println("No .env file found or error loading .env:", err)
	}

	cfg := Config{
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPass:        os.Getenv("DB_PASS"),
		DBName:        os.Getenv("DB_NAME"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AllowedOrigin: os.Getenv("ALLOWED_ORIGIN"),
		Port:          os.Getenv("PORT"),
	}

	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBPass == "" || cfg.DBName == "" {
		return Config{}, fmt.Errorf("missing required database environment variables")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET not set in environment")
	}
	if cfg.AllowedOrigin == "" {
		cfg.AllowedOrigin = "http://localhost:3000"
	}
	if cfg.Port == "" {
		cfg.Port = "7755"
	}

	return cfg, nil
}
