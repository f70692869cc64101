package cmd

import (
	"log/slog"
	"net/http"

	httpin "dashboard/internal/adapters/in/http"
	"dashboard/internal/adapters/out/backend"
	"dashboard/internal/adapters/out/postgres/journalrepo"
	"dashboard/internal/core/application/state"
	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/core/application/usecases/queries"
	"dashboard/internal/core/ports"
	"dashboard/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot owns the single admin session and everything hanging off it.
type CompositionRoot struct {
	config Config
	gormDB *gorm.DB
	logger *slog.Logger
	policy commands.AssignmentFailurePolicy

	client *backend.Client

	session       *state.Session
	store         *state.OrderStore
	directory     *state.DriverDirectory
	detail        *state.DetailFetcher
	notices       *state.NoticeBoard
	statusFlights *state.FlightRegistry
	driverFlights *state.FlightRegistry
}

// NewCompositionRoot wires the application. gormDB may be nil, which disables
// the journal.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	policy, err := commands.ParseAssignmentFailurePolicy(config.AssignmentFailurePolicy)
	if err != nil {
		return nil, err
	}

	session := state.NewSession()
	client, err := backend.NewClient(
		config.BackendURL,
		session,
		backend.WithHTTPClient(&http.Client{Timeout: config.RequestTimeout}),
	)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:        config,
		gormDB:        gormDB,
		logger:        logger,
		policy:        policy,
		client:        client,
		session:       session,
		store:         state.NewOrderStore(client),
		directory:     state.NewDriverDirectory(client),
		detail:        state.NewDetailFetcher(client),
		notices:       state.NewNoticeBoard(config.NoticeCapacity),
		statusFlights: state.NewFlightRegistry(config.RequestTimeout),
		driverFlights: state.NewFlightRegistry(config.RequestTimeout),
	}, nil
}

func (c *CompositionRoot) journalRepository() ports.JournalRepository {
	if c.gormDB == nil {
		return nil
	}
	return journalrepo.NewGormJournalRepository(c.gormDB)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.client, c.session, c.store, c.directory, c.logger)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(
		c.session, c.store, c.directory, c.detail, c.notices, c.logger, c.statusFlights, c.driverFlights,
	)
}

func (c *CompositionRoot) CreateReloadOrdersCommandHandler() commands.ReloadOrdersCommandHandler {
	return commands.NewReloadOrdersCommandHandler(c.store)
}

func (c *CompositionRoot) CreateReloadDriversCommandHandler() commands.ReloadDriversCommandHandler {
	return commands.NewReloadDriversCommandHandler(c.directory)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(
		c.store, c.client, c.statusFlights, c.notices, c.journalRepository(), c.logger,
	)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() *commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(
		c.store, c.directory, c.client, c.driverFlights, c.statusFlights,
		c.notices, c.journalRepository(), c.policy, c.logger,
	)
}

func (c *CompositionRoot) CreateCloseDetailCommandHandler() commands.CloseDetailCommandHandler {
	return commands.NewCloseDetailCommandHandler(c.detail)
}

func (c *CompositionRoot) CreateGetProfileQueryHandler() queries.GetProfileQueryHandler {
	return queries.NewGetProfileQueryHandler(c.session, c.client)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.store, c.statusFlights, c.driverFlights)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store, c.statusFlights, c.driverFlights)
}

func (c *CompositionRoot) CreateOrderDetailQueryHandler() queries.OrderDetailQueryHandler {
	return queries.NewOrderDetailQueryHandler(c.detail)
}

func (c *CompositionRoot) CreateGetDriversQueryHandler() queries.GetDriversQueryHandler {
	return queries.NewGetDriversQueryHandler(c.directory)
}

func (c *CompositionRoot) CreateGetOverviewQueryHandler() queries.GetOverviewQueryHandler {
	return queries.NewGetOverviewQueryHandler(c.client, c.client)
}

func (c *CompositionRoot) CreateGetNoticesQueryHandler() queries.GetNoticesQueryHandler {
	return queries.NewGetNoticesQueryHandler(c.notices)
}

func (c *CompositionRoot) CreateGetJournalQueryHandler() queries.GetJournalQueryHandler {
	return queries.NewGetJournalQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetJournalEntryQueryHandler() queries.GetJournalEntryQueryHandler {
	return queries.NewGetJournalEntryQueryHandler(c.journalRepository())
}

// CreateServer builds the HTTP server with every handler.
func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(c.session, httpin.Handlers{
		Login:        c.CreateLoginCommandHandler(),
		Logout:       c.CreateLogoutCommandHandler(),
		ReloadOrders: c.CreateReloadOrdersCommandHandler(),
		ChangeStatus: c.CreateChangeOrderStatusCommandHandler(),
		AssignDriver: c.CreateAssignDriverCommandHandler(),
		CloseDetail:  c.CreateCloseDetailCommandHandler(),
		GetProfile:   c.CreateGetProfileQueryHandler(),
		GetOrders:    c.CreateGetOrdersQueryHandler(),
		GetOrder:     c.CreateGetOrderQueryHandler(),
		OrderDetail:  c.CreateOrderDetailQueryHandler(),
		GetDrivers:   c.CreateGetDriversQueryHandler(),
		GetOverview:  c.CreateGetOverviewQueryHandler(),
		GetNotices:   c.CreateGetNoticesQueryHandler(),
		GetJournal:   c.CreateGetJournalQueryHandler(),

		GetJournalEntry: c.CreateGetJournalEntryQueryHandler(),
	})
}

// CreateJobManager builds the refresh jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.session,
		c.CreateReloadOrdersCommandHandler(),
		c.CreateReloadDriversCommandHandler(),
		jobs.Schedules{
			Orders:  c.config.OrderRefreshSchedule,
			Drivers: c.config.DriverRefreshSchedule,
		},
		c.logger,
	)
}

// Shutdown abandons in-flight backend requests.
func (c *CompositionRoot) Shutdown() {
	c.statusFlights.CancelAll()
	c.driverFlights.CancelAll()
}
