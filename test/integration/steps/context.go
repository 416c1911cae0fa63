// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"time"

	"github.com/cucumber/godog"
	"github.com/redis/go-redis/v9"

	"github.com/nutrition-tracker/backend/config"
	"github.com/nutrition-tracker/backend/internal/domain/entity"
	"github.com/nutrition-tracker/backend/internal/infra/dependency"
	"github.com/nutrition-tracker/backend/internal/integration/cache"
	"github.com/nutrition-tracker/backend/internal/integration/persistence/model"
	"github.com/nutrition-tracker/backend/test/integration/mock"
)

// testContext holds the state of one scenario.
type testContext struct {
	cfg      *config.Config
	db       *mock.Db
	redis    *redis.Client
	timeMock *mock.Time
	injector *dependency.Injector
	output   bytes.Buffer
	foods    map[string]*entity.Food
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		mock.NewDb("nutrition_tracker", model.All()...)
		mock.NewRedis()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		cfg:      config.Load(),
		db:       mock.NewDb("nutrition_tracker", model.All()...),
		redis:    mock.NewRedis(),
		timeMock: mock.NewTime(),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Clock steps
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)

	// Setup steps
	ctx.Given(`^a food "([^"]*)" exists with (\S+) calories, (\S+) protein, (\S+) fat and (\S+) carbs per (\S+)g$`, test.aFoodExists)
	ctx.Given(`^an entry of (\S+)g of "([^"]*)" exists for "([^"]*)"$`, test.anEntryExists)
	ctx.Given(`^an? (active|inactive) goal exists for "([^"]*)" with value (\d+)$`, test.aGoalExists)

	// App steps
	ctx.When(`^I run the app with input:$`, test.iRunTheAppWithInput)

	// Output assertion steps
	ctx.Then(`^the output should contain "([^"]*)"$`, test.theOutputShouldContain)
	ctx.Then(`^the output should not contain "([^"]*)"$`, test.theOutputShouldNotContain)

	// Storage assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the totals cache should contain (\d+) keys?$`, test.theTotalsCacheShouldContainKeys)
}

func (t *testContext) before() error {
	t.output.Reset()
	t.foods = make(map[string]*entity.Food)
	t.timeMock.SetCurrentTime(time.Now())

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	if err := mock.ClearRedis(t.redis); err != nil {
		return err
	}

	totalsCache := cache.NewRedisTotalsCache(t.redis, time.Minute)
	t.injector = dependency.NewInjector(t.cfg, t.db.DbConn, totalsCache, t.timeMock)
	return nil
}
