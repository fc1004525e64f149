package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"arena.backend/internal/domain/repositories"
)

// UnitOfWorkImpl binds every repository to one uowSession so they share
// visibility of uncommitted writes. Accessors memoize their repository on
// first use.
type UnitOfWorkImpl struct {
	sess *uowSession

	users         *UserRepository
	players       *PlayerRepository
	games         *GameRepository
	teams         *TeamRepository
	tournaments   *TournamentRepository
	registrations *RegistrationRepository
	matches       *MatchRepository
	news          *NewsRepository
	achievements  *AchievementRepository
	products      *ProductRepository
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWorkImpl {
	return &UnitOfWorkImpl{sess: newSession(db)}
}

func (u *UnitOfWorkImpl) Users() repositories.UserRepository {
	if u.users == nil {
		u.users = newUserRepository(u.sess)
	}
	return u.users
}

func (u *UnitOfWorkImpl) Players() repositories.PlayerRepository {
	if u.players == nil {
		u.players = newPlayerRepository(u.sess)
	}
	return u.players
}

func (u *UnitOfWorkImpl) Games() repositories.GameRepository {
	if u.games == nil {
		u.games = newGameRepository(u.sess)
	}
	return u.games
}

func (u *UnitOfWorkImpl) Teams() repositories.TeamRepository {
	if u.teams == nil {
		u.teams = newTeamRepository(u.sess)
	}
	return u.teams
}

func (u *UnitOfWorkImpl) Tournaments() repositories.TournamentRepository {
	if u.tournaments == nil {
		u.tournaments = newTournamentRepository(u.sess)
	}
	return u.tournaments
}

func (u *UnitOfWorkImpl) Registrations() repositories.RegistrationRepository {
	if u.registrations == nil {
		u.registrations = newRegistrationRepository(u.sess)
	}
	return u.registrations
}

func (u *UnitOfWorkImpl) Matches() repositories.MatchRepository {
	if u.matches == nil {
		u.matches = newMatchRepository(u.sess)
	}
	return u.matches
}

func (u *UnitOfWorkImpl) News() repositories.NewsRepository {
	if u.news == nil {
		u.news = newNewsRepository(u.sess)
	}
	return u.news
}

func (u *UnitOfWorkImpl) Achievements() repositories.AchievementRepository {
	if u.achievements == nil {
		u.achievements = newAchievementRepository(u.sess)
	}
	return u.achievements
}

func (u *UnitOfWorkImpl) Products() repositories.ProductRepository {
	if u.products == nil {
		u.products = newProductRepository(u.sess)
	}
	return u.products
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	return u.sess.begin(ctx)
}

func (u *UnitOfWorkImpl) SaveChanges(ctx context.Context) (int64, error) {
	return u.sess.flush()
}

func (u *UnitOfWorkImpl) Commit(ctx context.Context) error {
	if _, err := u.sess.flush(); err != nil {
		return err
	}
	return u.sess.commit()
}

func (u *UnitOfWorkImpl) Rollback(ctx context.Context) error {
	return u.sess.rollback()
}

// Execute wraps fn in a transaction. A panic inside fn rolls the
// transaction back before re-panicking.
func (u *UnitOfWorkImpl) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := u.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			u.sess.rollback()
			panic(r)
		}
	}()

	if err := fn(ctx); err != nil {
		if rbErr := u.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}
	return u.Commit(ctx)
}

func (u *UnitOfWorkImpl) Close() error {
	return u.sess.close()
}

type unitOfWorkFactory struct {
	db *gorm.DB
}

func NewUnitOfWorkFactory(db *gorm.DB) repositories.UnitOfWorkFactory {
	return &unitOfWorkFactory{db: db}
}

func (f *unitOfWorkFactory) New() repositories.UnitOfWork {
	return NewUnitOfWork(f.db)
}
