package converter

import (
	"medicita/internal/delivery/dto"
	"medicita/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO. The password is
// never copied.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:      user.ID,
		Nombre:  user.Name,
		Usuario: user.Login,
		Rol:     string(user.Role),
	}
}

// UsersToResponses converts a slice of User entities to UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

// SessionToResponse adds the landing view and allowed views for the role
func SessionToResponse(session *entity.Session) *dto.SessionResponse {
	if session == nil {
		return nil
	}

	views := session.Role.Views()
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = string(v)
	}

	return &dto.SessionResponse{
		ID:      session.ID,
		Usuario: session.Login,
		Nombre:  session.Name,
		Rol:     string(session.Role),
		Inicio:  string(session.Role.HomeView()),
		Vistas:  names,
	}
}

// RegisterRequestToUser converts a registration request to a new User
func RegisterRequestToUser(req *dto.RegisterRequest) *entity.User {
	return &entity.User{
		Name:     req.Nombre,
		Login:    req.Usuario,
		Password: req.Password,
		Role:     entity.Role(req.Rol),
	}
}
