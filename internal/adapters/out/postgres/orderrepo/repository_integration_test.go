package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"tawsil/internal/adapters/out/postgres/orderrepo"
	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/core/domain/model/order"
	"tawsil/internal/core/domain/services"
	"tawsil/internal/core/ports"
	"tawsil/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(owner string) *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID(), owner, order.Details{
		CustomerName:  "Cafe Corner",
		Location:      "Main Street 5",
		MapLink:       "https://maps.example.com/x",
		DeliveryTime:  time.Now().Add(2 * time.Hour).UTC(),
		ReceiverName:  "Sami",
		ReceiverPhone: "0500000000",
		Items:         suite.items(),
	}, time.Now().UTC())
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) items() []order.Item {
	item, err := order.NewItem("water crate", 3)
	suite.Require().NoError(err)
	return []order.Item{item}
}

func (suite *OrderRepositoryIntegrationTestSuite) courier(email string) account.Principal {
	p, err := account.NewPrincipal(email, account.RoleMurasel)
	suite.Require().NoError(err)
	return p
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	aggregate := suite.newOrder("manager@example.com")

	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(aggregate))
	suite.Equal(order.StatusNew, loaded.Status())
	suite.Equal("manager@example.com", loaded.UserEmail())
	suite.Len(loaded.Details().Items, 1)
	suite.Equal("water crate", loaded.Details().Items[0].Name())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateWhere_AcceptRace_ExactlyOneWins() {
	ctx := context.Background()
	aggregate := suite.newOrder("manager@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	// both couriers observed the same NEW, unclaimed order
	precondition := ports.TransitionPrecondition{Status: order.StatusNew}

	accept := func(email string) error {
		loaded, err := suite.repository.Get(ctx, aggregate.ID())
		if err != nil {
			return err
		}
		if err = loaded.TransitionTo(suite.courier(email), order.StatusInProgress, time.Now().UTC()); err != nil {
			return err
		}
		return suite.repository.UpdateWhere(ctx, loaded, precondition)
	}

	results := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		results[0] = accept("first@example.com")
	}()
	go func() {
		defer wg.Done()
		results[1] = accept("second@example.com")
	}()
	wg.Wait()

	winners := 0
	for _, err := range results {
		if err == nil {
			winners++
		} else {
			suite.Require().ErrorIs(err, errs.ErrConflict)
		}
	}
	suite.Equal(1, winners)

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusInProgress, loaded.Status())
	suite.Require().NotNil(loaded.DeliveryPerson())
	suite.Require().NotNil(loaded.StartedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateWhere_MissingOrder() {
	ctx := context.Background()
	aggregate := suite.newOrder("manager@example.com")
	suite.Require().NoError(aggregate.TransitionTo(suite.courier("c@example.com"), order.StatusInProgress, time.Now().UTC()))

	err := suite.repository.UpdateWhere(ctx, aggregate, ports.TransitionPrecondition{Status: order.StatusNew})
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_SoftDeleteRoundTrip() {
	ctx := context.Background()
	aggregate := suite.newOrder("manager@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	owner, err := account.NewPrincipal("manager@example.com", account.RoleManager)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.MarkDeleted(owner))
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	loaded, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsDeleted())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetPage_FiltersAndOrders() {
	ctx := context.Background()

	mine := suite.newOrder("manager@example.com")
	other := suite.newOrder("other@example.com")
	deleted := suite.newOrder("manager@example.com")
	owner, err := account.NewPrincipal("manager@example.com", account.RoleManager)
	suite.Require().NoError(err)
	suite.Require().NoError(deleted.MarkDeleted(owner))

	for _, aggregate := range []*order.Order{mine, other, deleted} {
		suite.Require().NoError(suite.repository.Add(ctx, aggregate))
	}
	suite.Require().NoError(suite.repository.Update(ctx, deleted))

	filter, err := services.BuildOrderFilter(owner, services.TabUnspecified)
	suite.Require().NoError(err)

	page, err := suite.repository.GetPage(ctx, filter, 0, 10)
	suite.Require().NoError(err)
	suite.Equal(int64(1), page.Total)
	suite.Require().Len(page.Orders, 1)
	suite.True(page.Orders[0].ID().IsEqual(mine.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetPage_Pagination() {
	ctx := context.Background()

	for range 5 {
		suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("manager@example.com")))
	}

	courier := suite.courier("c@example.com")
	filter, err := services.BuildOrderFilter(courier, services.TabNew)
	suite.Require().NoError(err)

	first, err := suite.repository.GetPage(ctx, filter, 0, 4)
	suite.Require().NoError(err)
	suite.Equal(int64(5), first.Total)
	suite.Len(first.Orders, 4)

	second, err := suite.repository.GetPage(ctx, filter, 4, 4)
	suite.Require().NoError(err)
	suite.Len(second.Orders, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	aggregate := suite.newOrder("manager@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	suite.Require().NoError(suite.repository.Delete(ctx, aggregate.ID()))

	_, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	suite.Require().ErrorIs(suite.repository.Delete(ctx, aggregate.ID()), errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountOverdue() {
	ctx := context.Background()

	overdue, err := order.NewOrder(kernel.NewUUID(), "manager@example.com", order.Details{
		CustomerName:  "Cafe Corner",
		Location:      "Main Street 5",
		MapLink:       "https://maps.example.com/x",
		DeliveryTime:  time.Now().Add(-time.Hour).UTC(),
		ReceiverName:  "Sami",
		ReceiverPhone: "0500000000",
	}, time.Now().Add(-2*time.Hour).UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, overdue))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newOrder("manager@example.com")))

	count, err := suite.repository.CountOverdue(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
