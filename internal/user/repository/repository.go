package repository

import (
	"context"

	User "github.com/siddharthbaleja7/fb-messenger/internal/user/model"
	"github.com/siddharthbaleja7/fb-messenger/pkg/db"
	appErrors "github.com/siddharthbaleja7/fb-messenger/pkg/errors"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type UserRepository struct {
	session   *gocql.Session
	allocator *db.IndexAllocator
}

func NewUserRepository(session *gocql.Session) *UserRepository {
	return &UserRepository{
		session:   session,
		allocator: db.NewIndexAllocator(session, "user_index", 0),
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *User.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	index, err := r.allocator.Next(ctx)
	if err != nil {
		return err
	}
	user.Index = index

	err = r.session.Query(
		`INSERT INTO user_details (user_id, user_index, username, full_name, email)
		 VALUES (?, ?, ?, ?, ?)`,
		gocql.UUID(user.ID), user.Index, user.Username, user.FullName, user.Email,
	).WithContext(ctx).Exec()
	if err != nil {
		return db.TranslateError(errors.Wrap(err, "userRepo.CreateUser.Exec"))
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error) {
	return r.scanUser(ctx,
		`SELECT user_id, user_index, username, full_name, email
		 FROM user_details WHERE user_id = ?`,
		gocql.UUID(id))
}

func (r *UserRepository) GetUserByIndex(ctx context.Context, index int) (*User.User, error) {
	return r.scanUser(ctx,
		`SELECT user_id, user_index, username, full_name, email
		 FROM user_details WHERE user_index = ?`,
		index)
}

func (r *UserRepository) scanUser(ctx context.Context, stmt string, bind interface{}) (*User.User, error) {
	var (
		id   gocql.UUID
		user User.User
	)
	err := r.session.Query(stmt, bind).WithContext(ctx).
		Scan(&id, &user.Index, &user.Username, &user.FullName, &user.Email)
	if err == gocql.ErrNotFound {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, db.TranslateError(errors.Wrap(err, "userRepo.scanUser.Scan"))
	}
	user.ID = uuid.UUID(id)
	return &user, nil
}
