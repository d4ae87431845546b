// Package steps provides step definitions for the BDD integration suite.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/cakebook/backend/internal/application/usecase/analytics"
	"github.com/cakebook/backend/internal/application/usecase/auth"
	"github.com/cakebook/backend/internal/application/usecase/expense"
	"github.com/cakebook/backend/internal/application/usecase/sale"
	"github.com/cakebook/backend/internal/infra/server/router"
	"github.com/cakebook/backend/internal/integration/adapters"
	"github.com/cakebook/backend/internal/integration/cache"
	"github.com/cakebook/backend/internal/integration/entrypoint/controller"
	"github.com/cakebook/backend/internal/integration/entrypoint/middleware"
	"github.com/cakebook/backend/internal/integration/persistence"
	"github.com/cakebook/backend/internal/integration/persistence/model"
	"github.com/cakebook/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-the-suite"

// Throttle windows used by the server under test. Scenarios that probe
// cooldown behavior rely on these being comfortably longer than a
// scenario's runtime.
const (
	analyticsCooldown   = 2 * time.Second
	analyticsRetryDelay = 5 * time.Second
	listCooldown        = time.Second
	listRetryDelay      = 3 * time.Second
)

var (
	serverOnce sync.Once
	portOnce   sync.Once
	serverPort int
	testDB     *mock.Db
)

// testContext carries per-scenario state: the request being built and the
// last response received.
type testContext struct {
	uri     string
	client  *http.Client
	headers map[string]string

	response *response

	accessToken  string
	refreshToken string

	db *mock.Db
}

type response struct {
	status int
	body   any
}

func initializePort() {
	portOnce.Do(func() {
		serverPort = findAvailablePort()
		// The login rate limiter steps aside in the test environment.
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario wires the scenario context and registers all steps.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", serverPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb([]any{
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.SaleModel{},
			&model.SaleItemModel{},
			&model.ExpenseModel{},
		}),
	}
	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Account setup steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, test.iAmLoggedInAsWithPassword)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should be absent$`, test.theResponseFieldShouldBeAbsent)
	ctx.Then(`^the response list "([^"]*)" should have (\d+) items$`, test.theResponseListShouldHaveItems)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.response = nil

	if t.db != nil {
		if err := t.db.ClearDB(); err != nil {
			panic(fmt.Sprintf("failed to clear database between scenarios: %v", err))
		}
	}
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		panic(fmt.Sprintf("failed to clear redis between scenarios: %v", err))
	}
}

// startServer boots the full API once, backed by the shared in-memory
// SQLite database and miniredis. Scenarios reset data, not the process.
func (t *testContext) startServer() {
	serverOnce.Do(func() {
		go func() {
			saleRepo := persistence.NewSaleRepository(testDB.DbConn)
			expenseRepo := persistence.NewExpenseRepository(testDB.DbConn)
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)

			snapshotCache := cache.NewRedisSnapshotCache(mock.NewRedis())

			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute, 7*24*time.Hour, tokenRepo)

			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			createSaleUseCase := sale.NewCreateSaleUseCase(saleRepo)
			listSalesUseCase := sale.NewListSalesUseCase(saleRepo, listCooldown, listRetryDelay)
			createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo)
			listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo, listCooldown, listRetryDelay)
			getAnalyticsUseCase := analytics.NewGetAnalyticsUseCase(
				saleRepo,
				expenseRepo,
				snapshotCache,
				analyticsCooldown,
				analyticsRetryDelay,
			)

			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			authController := controller.NewAuthController(registerUseCase, loginUseCase, refreshTokenUseCase, logoutUseCase)
			saleController := controller.NewSaleController(createSaleUseCase, listSalesUseCase, getAnalyticsUseCase.Guard())
			expenseController := controller.NewExpenseController(createExpenseUseCase, listExpensesUseCase, getAnalyticsUseCase.Guard())
			analyticsController := controller.NewAnalyticsController(getAnalyticsUseCase)

			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				saleController,
				expenseController,
				analyticsController,
				loginRateLimiter,
				authMiddleware,
				[]string{"*"},
			)
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", serverPort),
				Handler: engine,
			}
			_ = server.ListenAndServe()
		}()
	})

	// Wait for the server to accept requests.
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}
