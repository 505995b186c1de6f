package domain_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgecrafted/domainkit/pkg/domain"
	"github.com/forgecrafted/domainkit/pkg/event"
	"github.com/forgecrafted/domainkit/pkg/maybe"
	"github.com/forgecrafted/domainkit/pkg/result"
)

type accountProps struct {
	Email string
}

type account struct {
	*domain.AggregateRoot[accountProps]
}

type accountOpened struct {
	ID domain.ID
}

func (e accountOpened) AggregateID() uuid.UUID { return e.ID.UUID() }

func openAccount(email string) account {
	a := account{AggregateRoot: domain.NewAggregateRoot(accountProps{Email: email}, maybe.None[domain.ID]())}
	a.Remind(accountOpened{ID: a.ID()})
	return a
}

func TestAggregateRootRecordsEvents(t *testing.T) {
	t.Parallel()

	a := openAccount("user@example.com")
	assert.Equal(t, 1, a.Pending())
	assert.Equal(t, "user@example.com", a.Props().Email)

	d := event.NewDispatcher()
	var opened []domain.ID
	d.Bind(event.NewHandler(func(e accountOpened) error {
		opened = append(opened, e.ID)
		return nil
	}))

	require.NoError(t, d.Trigger(&a))
	require.Len(t, opened, 1)
	assert.Equal(t, a.ID(), opened[0])
	assert.Equal(t, 0, a.Pending())
}

func TestUseCaseFunc(t *testing.T) {
	t.Parallel()

	open := domain.UseCaseFunc[string, account](func(ctx context.Context, email string) result.Result[account] {
		if email == "" {
			return result.Err[account](domain.NewError("email is required"))
		}
		return result.Ok(openAccount(email))
	})

	res := open.Execute(context.Background(), "user@example.com")
	require.True(t, res.IsOk())
	assert.Equal(t, "user@example.com", res.Unwrap().Props().Email)

	res = open.Execute(context.Background(), "")
	require.True(t, res.IsErr())
	assert.True(t, domain.IsDomainError(res.Err()))
}
