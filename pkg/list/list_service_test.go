package list_test

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"smart-shopping-list/domain"
	"smart-shopping-list/entities"
	"smart-shopping-list/pkg/list"
)

type fakeListRepository struct {
	lists map[string]*entities.ShoppingList
	items map[string][]entities.GroceryItem
}

func newFakeListRepository() *fakeListRepository {
	return &fakeListRepository{
		lists: make(map[string]*entities.ShoppingList),
		items: make(map[string][]entities.GroceryItem),
	}
}

func (r *fakeListRepository) CreateList(_ context.Context, l *entities.ShoppingList) error {
	l.CreatedAt = time.Now().UTC()
	stored := *l
	r.lists[l.ID.String()] = &stored
	return nil
}

func (r *fakeListRepository) GetListByID(_ context.Context, id string) (*entities.ShoppingList, error) {
	l, ok := r.lists[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	found := *l
	return &found, nil
}

func (r *fakeListRepository) GetListByShareCode(_ context.Context, shareCode string) (*entities.ShoppingList, error) {
	for _, l := range r.lists {
		if l.ShareCode == shareCode {
			found := *l
			found.Items = r.items[l.ID.String()]
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeListRepository) DeleteList(_ context.Context, id string) (int64, error) {
	if _, ok := r.lists[id]; !ok {
		return 0, nil
	}
	delete(r.lists, id)
	delete(r.items, id)
	return 1, nil
}

type fakeMailer struct {
	to      string
	subject string
	body    string
	sent    int
}

func (m *fakeMailer) Send(toEmail, subject, body string) error {
	m.to = toEmail
	m.subject = subject
	m.body = body
	m.sent++
	return nil
}

func newService(repo *fakeListRepository, mailer *fakeMailer) list.ListService {
	return list.NewListService(repo, mailer, "http://localhost:8080")
}

func TestCreateListDefaultName(t *testing.T) {
	svc := newService(newFakeListRepository(), &fakeMailer{})

	res, err := svc.CreateList(context.Background(), domain.CreateListRequest{})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultListName, res.Name)
	assert.True(t, res.IsPublic)
	assert.NotEmpty(t, res.ID)
}

func TestCreateListCustomName(t *testing.T) {
	svc := newService(newFakeListRepository(), &fakeMailer{})

	res, err := svc.CreateList(context.Background(), domain.CreateListRequest{Name: "Weekend BBQ"})
	require.NoError(t, err)

	assert.Equal(t, "Weekend BBQ", res.Name)
}

func TestCreateListShareCodeShape(t *testing.T) {
	svc := newService(newFakeListRepository(), &fakeMailer{})

	res, err := svc.CreateList(context.Background(), domain.CreateListRequest{})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{8}$`), res.ShareCode)
}

func TestCreateListShareCodesUnique(t *testing.T) {
	svc := newService(newFakeListRepository(), &fakeMailer{})

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		res, err := svc.CreateList(context.Background(), domain.CreateListRequest{})
		require.NoError(t, err)
		seen[res.ShareCode] = struct{}{}
	}
	assert.Len(t, seen, 1000)
}

func TestGetListByShareCode(t *testing.T) {
	repo := newFakeListRepository()
	svc := newService(repo, &fakeMailer{})

	created, err := svc.CreateList(context.Background(), domain.CreateListRequest{Name: "Groceries"})
	require.NoError(t, err)

	listID := uuid.MustParse(created.ID)
	repo.items[created.ID] = []entities.GroceryItem{
		{ID: 1, ListID: listID, Name: "Bananas", Quantity: 1, Category: "Fruits"},
	}

	res, err := svc.GetListByShareCode(context.Background(), created.ShareCode)
	require.NoError(t, err)

	assert.Equal(t, created.ID, res.ID)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Bananas", res.Items[0].Name)
	assert.Equal(t, "1", res.Items[0].ID)
}

func TestGetListByShareCodeNotFound(t *testing.T) {
	svc := newService(newFakeListRepository(), &fakeMailer{})

	_, err := svc.GetListByShareCode(context.Background(), "deadbeef")
	assert.ErrorIs(t, err, domain.ErrListNotFound)
}

func TestDeleteList(t *testing.T) {
	repo := newFakeListRepository()
	svc := newService(repo, &fakeMailer{})

	created, err := svc.CreateList(context.Background(), domain.CreateListRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteList(context.Background(), created.ID))
	assert.Empty(t, repo.lists)
}

func TestDeleteListNotFound(t *testing.T) {
	svc := newService(newFakeListRepository(), &fakeMailer{})

	err := svc.DeleteList(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrListNotFound)
}

func TestDeleteListInvalidID(t *testing.T) {
	svc := newService(newFakeListRepository(), &fakeMailer{})

	err := svc.DeleteList(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestShareListSendsMail(t *testing.T) {
	repo := newFakeListRepository()
	mailer := &fakeMailer{}
	svc := newService(repo, mailer)

	created, err := svc.CreateList(context.Background(), domain.CreateListRequest{Name: "Groceries"})
	require.NoError(t, err)

	err = svc.ShareList(context.Background(), created.ID, domain.ShareListRequest{Email: "friend@example.com"})
	require.NoError(t, err)

	assert.Equal(t, 1, mailer.sent)
	assert.Equal(t, "friend@example.com", mailer.to)
	assert.Contains(t, mailer.subject, "Groceries")
	assert.Contains(t, mailer.body, "http://localhost:8080/shared/"+created.ShareCode)
}

func TestShareListNotFound(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newService(newFakeListRepository(), mailer)

	err := svc.ShareList(context.Background(), uuid.NewString(), domain.ShareListRequest{Email: "friend@example.com"})
	assert.ErrorIs(t, err, domain.ErrListNotFound)
	assert.Zero(t, mailer.sent)
}

func TestShareCodeIsLowercaseHex(t *testing.T) {
	svc := newService(newFakeListRepository(), &fakeMailer{})

	for i := 0; i < 20; i++ {
		res, err := svc.CreateList(context.Background(), domain.CreateListRequest{})
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(res.ShareCode), res.ShareCode)
	}
}
