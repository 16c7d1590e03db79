package service

import (
	"context"
	"strings"

	"github.com/deppfellow/registration-validator/internal/model/user"
	"github.com/deppfellow/registration-validator/internal/server"
	"github.com/rs/zerolog"
)

// RegistrationService accepts validated registration input.
//
// Nothing is persisted; the accepted payload is echoed back.
type RegistrationService struct {
	server *server.Server
}

func NewRegistrationService(s *server.Server) *RegistrationService {
	return &RegistrationService{
		server: s,
	}
}

// Register builds the success response for an already validated payload.
//
// Only non-identifying facts about the input reach logs and New Relic.
func (s *RegistrationService) Register(ctx context.Context, payload *user.RegisterUserPayload) (*user.RegisterUserResponse, error) {
	international := payload.PhoneNumber != nil && strings.HasPrefix(*payload.PhoneNumber, "+")

	zerolog.Ctx(ctx).Info().
		Bool("international_phone", international).
		Msg("user registration accepted")

	s.server.LoggerService.RecordCustomEvent("UserRegistrationAccepted", map[string]interface{}{
		"international_phone": international,
	})

	return user.NewRegisterUserResponse(payload), nil
}
