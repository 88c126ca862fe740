package usecase

import (
	"context"

	"medicita/internal/domain/entity"
	"medicita/internal/domain/repository"
	"medicita/pkg/idgen"

	"github.com/sirupsen/logrus"
)

// SeedUsecase fills empty collections with demo accounts and doctors. It never
// touches a collection that already holds data, so running it twice is a no-op.
type SeedUsecase interface {
	Seed(ctx context.Context) error
}

type seedUsecase struct {
	log        *logrus.Logger
	userRepo   repository.UserRepository
	doctorRepo repository.DoctorRepository
	ids        *idgen.Generator
}

func NewSeedUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	ids *idgen.Generator,
) SeedUsecase {
	return &seedUsecase{
		log:        log,
		userRepo:   userRepo,
		doctorRepo: doctorRepo,
		ids:        ids,
	}
}

func (u *seedUsecase) Seed(ctx context.Context) error {
	users := []entity.User{
		{ID: u.ids.Generate(idgen.PrefixUser), Name: "Admin", Login: "admin", Password: "admin", Role: entity.RoleAdmin},
		{ID: u.ids.Generate(idgen.PrefixUser), Name: "Dra. Demo", Login: "doctor", Password: "doctor", Role: entity.RoleDoctor},
		{ID: u.ids.Generate(idgen.PrefixUser), Name: "Recep Demo", Login: "recep", Password: "recep", Role: entity.RoleReceptionist},
	}
	seeded, err := u.userRepo.SeedIfEmpty(ctx, users)
	if err != nil {
		u.log.Warnf("Failed to seed users: %+v", err)
		return err
	}
	if seeded {
		u.log.Infof("Seeded %d users", len(users))
	}

	doctors := []entity.Doctor{
		{
			ID:        u.ids.Generate(idgen.PrefixDoctor),
			Name:      "Dra. Sofía Pérez",
			Specialty: "Medicina General",
			Phone:     "999-111-2222",
			Email:     "sofia@clinic.com",
			Schedule:  "L-V 09:00-17:00",
		},
		{
			ID:        u.ids.Generate(idgen.PrefixDoctor),
			Name:      "Dr. Luis García",
			Specialty: "Pediatría",
			Phone:     "999-333-4444",
			Email:     "luis@clinic.com",
			Schedule:  "L-V 10:00-16:00",
		},
	}
	seeded, err = u.doctorRepo.SeedIfEmpty(ctx, doctors)
	if err != nil {
		u.log.Warnf("Failed to seed doctors: %+v", err)
		return err
	}
	if seeded {
		u.log.Infof("Seeded %d doctors", len(doctors))
	}

	return nil
}
