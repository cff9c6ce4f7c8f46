package system_healthcheck

import (
	"meetplan/internal/config"
)

var healthcheckService = &HealthcheckService{
	config.GetEnv().BackendRootPath,
}
var healthcheckController = &HealthcheckController{
	healthcheckService,
}

func GetHealthcheckController() *HealthcheckController {
	return healthcheckController
}
