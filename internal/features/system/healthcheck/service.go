package system_healthcheck

import (
	"fmt"

	"meetplan/internal/cache"
	"meetplan/internal/config"
	"meetplan/internal/storage"

	"github.com/shirou/gopsutil/v4/disk"
)

// free space below this share of the volume marks the instance unhealthy
const minFreeDiskPercent = 5.0

type HealthcheckService struct {
	diskPath string
}

type HealthStatusDTO struct {
	Status           string  `json:"status"`
	Error            string  `json:"error,omitempty"`
	DiskUsedPercent  float64 `json:"disk_used_percent"`
	DiskFreeBytes    uint64  `json:"disk_free_bytes"`
	IsApiKeyRequired bool    `json:"is_api_key_required"`
}

func (s *HealthcheckService) IsHealthy() (*HealthStatusDTO, error) {
	status := &HealthStatusDTO{
		Status:           "ok",
		IsApiKeyRequired: config.GetEnv().IsApiKeyRequired,
	}

	if err := storage.GetDb().Exec("SELECT 1").Error; err != nil {
		return s.unhealthy(status, fmt.Errorf("database check failed: %w", err))
	}

	if err := cache.Ping(); err != nil {
		return s.unhealthy(status, fmt.Errorf("cache check failed: %w", err))
	}

	usage, err := disk.Usage(s.diskPath)
	if err != nil {
		return s.unhealthy(status, fmt.Errorf("disk check failed: %w", err))
	}

	status.DiskUsedPercent = usage.UsedPercent
	status.DiskFreeBytes = usage.Free

	if 100-usage.UsedPercent < minFreeDiskPercent {
		return s.unhealthy(status, fmt.Errorf("disk is %.1f%% full", usage.UsedPercent))
	}

	return status, nil
}

func (s *HealthcheckService) unhealthy(status *HealthStatusDTO, err error) (*HealthStatusDTO, error) {
	status.Status = "unavailable"
	status.Error = err.Error()
	return status, err
}
