package account

import (
	"context"
	"time"

	c "selector/internal/core/domain/common"
)

type CreateInput struct {
	Username     Username
	FirstName    string
	LastName     string
	Email        c.Email
	PasswordHash c.Optional[PasswordHash]
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	DateJoined   time.Time
}

type UpdateInput struct {
	ID ID

	DoIsActiveUpdate bool
	IsActive         bool
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Account, error)
	GetByID(ctx context.Context, id ID) (Account, error)
	GetByUsername(ctx context.Context, username Username) (Account, error)
	Update(ctx context.Context, input UpdateInput) (Account, error)
}
