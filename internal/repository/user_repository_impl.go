package repository

import (
	"context"

	"medicita/internal/domain/entity"
	domainRepo "medicita/internal/domain/repository"
	"medicita/internal/infrastructure/storage"
	"medicita/pkg/idgen"

	"github.com/sirupsen/logrus"
)

type userRepository struct {
	users *collection[entity.User]
	ids   *idgen.Generator
}

func NewUserRepository(log *logrus.Logger, store storage.KeyValueStore, locker *storage.KeyLocker, ids *idgen.Generator) domainRepo.UserRepository {
	return &userRepository{
		users: newCollection[entity.User](log, store, locker, storage.KeyUsers),
		ids:   ids,
	}
}

func (r *userRepository) FindAll(ctx context.Context, filter *entity.ListFilter) ([]entity.User, error) {
	return r.users.list(ctx, filter)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.users.find(ctx, id)
}

func (r *userRepository) FindByCredentials(ctx context.Context, login, password string) (*entity.User, error) {
	users, err := r.users.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Login == login && u.Password == password {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (r *userRepository) Save(ctx context.Context, user *entity.User) (bool, error) {
	return r.users.save(ctx, user,
		func(u *entity.User) { u.ID = r.ids.Generate(idgen.PrefixUser) },
		func(items []entity.User, idx int) error {
			for i, existing := range items {
				if i != idx && existing.SameLogin(user.Login) {
					return domainRepo.ErrLoginTaken
				}
			}
			return nil
		})
}

func (r *userRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.users.remove(ctx, id)
}

func (r *userRepository) SeedIfEmpty(ctx context.Context, users []entity.User) (bool, error) {
	return r.users.seedIfEmpty(ctx, users)
}
