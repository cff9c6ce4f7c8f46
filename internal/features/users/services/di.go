package users_services

import (
	users_repositories "meetplan/internal/features/users/repositories"
	"meetplan/internal/util/logger"
)

var secretKeyRepository = &users_repositories.SecretKeyRepository{}
var userRepository = &users_repositories.UserRepository{}
var userTokenRepository = &users_repositories.UserTokenRepository{}

var userService = &UserService{
	userRepository:      userRepository,
	userTokenRepository: userTokenRepository,
	secretKeyRepository: secretKeyRepository,
	logger:              logger.GetLogger(),
}

func GetUserService() *UserService {
	return userService
}
