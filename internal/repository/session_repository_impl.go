package repository

import (
	"context"

	"medicita/internal/domain/entity"
	domainRepo "medicita/internal/domain/repository"
	"medicita/internal/infrastructure/storage"

	"github.com/sirupsen/logrus"
)

type sessionRepository struct {
	log    *logrus.Logger
	store  storage.KeyValueStore
	locker *storage.KeyLocker
}

func NewSessionRepository(log *logrus.Logger, store storage.KeyValueStore, locker *storage.KeyLocker) domainRepo.SessionRepository {
	return &sessionRepository{log: log, store: store, locker: locker}
}

func (r *sessionRepository) Get(ctx context.Context) (*entity.Session, error) {
	session := storage.Read[*entity.Session](ctx, r.log, r.store, storage.KeySession, nil)
	if session == nil || session.ID == "" {
		return nil, nil
	}
	return session, nil
}

func (r *sessionRepository) Set(ctx context.Context, session *entity.Session) error {
	unlock := r.locker.Lock(storage.KeySession)
	defer unlock()
	return storage.Write(ctx, r.store, storage.KeySession, session)
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	unlock := r.locker.Lock(storage.KeySession)
	defer unlock()
	return storage.Remove(ctx, r.store, storage.KeySession)
}
