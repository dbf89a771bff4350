package controllers

import (
	"attendance_go/database"

	"github.com/gofiber/fiber/v2"
)

type HealthController struct{}

// Health reports service liveness plus backing-store reachability
func (hc *HealthController) Health(c *fiber.Ctx) error {
	dbStatus := "ok"
	if sqlDB, err := database.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "unreachable"
	}

	redisStatus := "disabled"
	if rc := database.GetRedisClient(); rc != nil {
		redisStatus = "ok"
		if err := rc.Ping(c.Context()).Err(); err != nil {
			redisStatus = "unreachable"
		}
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "Attendance API",
		"version": "1.0.0",
		"db":      dbStatus,
		"redis":   redisStatus,
	})
}
